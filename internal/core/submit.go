package core

// SubmitCheck is the outcome of evaluating a draft against the submission
// rules. A failed check is a normal result, not an error; RedirectStep
// points at the step the author should be taken to.
type SubmitCheck struct {
	OK           bool   `json:"ok"`
	RedirectStep Step   `json:"redirectStep"`
	Message      string `json:"message,omitempty"`
}

// EvaluateSubmission checks the minimum-completeness rules that gate the
// draft-to-submitted transition. Rules run in order and the first failure
// decides the redirect target. Save-as-draft is never gated.
func EvaluateSubmission(d *CourseDraft) SubmitCheck {
	if d.Title == "" {
		return SubmitCheck{
			RedirectStep: StepBasicInfo,
			Message:      "please add a title for your course",
		}
	}
	if len(d.Curriculum.Modules) == 0 {
		return SubmitCheck{
			RedirectStep: StepCurriculum,
			Message:      "please add at least one module to your course",
		}
	}
	return SubmitCheck{OK: true}
}
