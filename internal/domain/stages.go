package domain

// Stages is the fixed production order. Every job walks it front to back,
// one photo-gated transition at a time. "Completed" is terminal.
var Stages = []string{
	"Hand Designing",
	"CAD",
	"Ghat (Filing)",
	"Polish 1",
	"Diamond Setting",
	"Polish 2",
	"Stone Setting",
	"Stringing",
	"Kundan Ghat",
	"Completed",
}

// StageCompleted is the sole terminal stage.
const StageCompleted = "Completed"

// StageIndex returns the position of stage in the pipeline, or -1 when the
// name is not a valid stage.
func StageIndex(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// IsValidStage reports whether stage is a member of the pipeline.
func IsValidStage(stage string) bool {
	return StageIndex(stage) >= 0
}

// IsTerminalStage reports whether a job at this stage can advance no further.
func IsTerminalStage(stage string) bool {
	return stage == StageCompleted
}

// NextStage returns the stage following the given one. The second result is
// false when the stage is terminal or unknown.
func NextStage(stage string) (string, bool) {
	idx := StageIndex(stage)
	if idx < 0 || idx >= len(Stages)-1 {
		return "", false
	}
	return Stages[idx+1], true
}

// WorkableStages returns the pipeline without the terminal stage; these are
// the stages workers can be assigned to.
func WorkableStages() []string {
	return Stages[:len(Stages)-1]
}
