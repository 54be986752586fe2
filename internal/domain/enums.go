package domain

type SetType string

const (
	SetWorking SetType = "working"
	SetWarmup  SetType = "warmup"
	SetDrop    SetType = "drop"
	SetFailure SetType = "failure"
)

// ValidSetTypes is the canonical set of accepted set type strings.
var ValidSetTypes = map[string]bool{
	"working": true, "warmup": true, "drop": true, "failure": true,
}

type WorkoutType string

const (
	WorkoutStrength     WorkoutType = "strength"
	WorkoutHypertrophy  WorkoutType = "hypertrophy"
	WorkoutConditioning WorkoutType = "conditioning"
	WorkoutGeneral      WorkoutType = "general"
)

// ValidWorkoutTypes is the canonical set of accepted workout type strings.
var ValidWorkoutTypes = map[string]bool{
	"strength": true, "hypertrophy": true, "conditioning": true, "general": true,
}
