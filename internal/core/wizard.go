package core

// Step indexes the fixed ordered list of authoring wizard steps.
type Step int

const (
	StepBasicInfo Step = iota
	StepMedia
	StepCurriculum
	StepPricing
	StepSettings
)

// LastStep is the final wizard step, at which submit replaces next.
const LastStep = StepSettings

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic-info"
	case StepMedia:
		return "media"
	case StepCurriculum:
		return "curriculum"
	case StepPricing:
		return "pricing"
	case StepSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// GoToStep moves to the given step, clamped into the valid range. No
// validation gates navigation; incomplete steps may be left freely.
func (d *CourseDraft) GoToStep(step Step) {
	if step < StepBasicInfo {
		step = StepBasicInfo
	}
	if step > LastStep {
		step = LastStep
	}
	d.CurrentStep = step
}

// NextStep advances one step; a no-op at the last step.
func (d *CourseDraft) NextStep() {
	d.GoToStep(d.CurrentStep + 1)
}

// PreviousStep moves back one step; a no-op at the first step.
func (d *CourseDraft) PreviousStep() {
	d.GoToStep(d.CurrentStep - 1)
}
