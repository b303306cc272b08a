// Package scoring turns raw answer counts into score, XP and grade.
package scoring

const (
	PointsPerCorrect = 10
	XPPerCorrect     = 5
)

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeF     Grade = "F"
)

// Result is the outcome of scoring one closed attempt.
type Result struct {
	Score int
	XP    int
	Grade Grade
}

// Evaluate scores correct answers out of attempted. Callers guarantee
// attempted > 0; a non-positive attempted count grades F.
func Evaluate(correct, attempted int) Result {
	return Result{
		Score: correct * PointsPerCorrect,
		XP:    correct * XPPerCorrect,
		Grade: GradeFor(correct, attempted),
	}
}

// GradeFor maps the accuracy correct/attempted to a grade. Thresholds are
// compared in integer arithmetic so 7/10 lands exactly on A.
func GradeFor(correct, attempted int) Grade {
	switch {
	case attempted <= 0:
		return GradeF
	case correct == attempted:
		return GradeAPlus
	case correct*10 >= attempted*7:
		return GradeA
	case correct*2 >= attempted:
		return GradeB
	default:
		return GradeF
	}
}
