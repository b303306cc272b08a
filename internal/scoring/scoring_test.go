package scoring

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		correct, attempted int
		want               Result
	}{
		{10, 10, Result{Score: 100, XP: 50, Grade: GradeAPlus}},
		{1, 1, Result{Score: 10, XP: 5, Grade: GradeAPlus}},
		{9, 10, Result{Score: 90, XP: 45, Grade: GradeA}},
		{7, 10, Result{Score: 70, XP: 35, Grade: GradeA}},
		{69, 100, Result{Score: 690, XP: 345, Grade: GradeB}},
		{5, 10, Result{Score: 50, XP: 25, Grade: GradeB}},
		{1, 2, Result{Score: 10, XP: 5, Grade: GradeB}},
		{49, 100, Result{Score: 490, XP: 245, Grade: GradeF}},
		{0, 10, Result{Score: 0, XP: 0, Grade: GradeF}},
	}

	for _, tt := range tests {
		got := Evaluate(tt.correct, tt.attempted)
		if got != tt.want {
			t.Errorf("Evaluate(%d, %d) = %+v, want %+v", tt.correct, tt.attempted, got, tt.want)
		}
	}
}

// Every (correct, attempted) pair must agree with the float thresholds.
func TestGradeFor_MatchesAccuracyThresholds(t *testing.T) {
	for attempted := 1; attempted <= 60; attempted++ {
		for correct := 0; correct <= attempted; correct++ {
			accuracy := float64(correct) / float64(attempted)
			var want Grade
			switch {
			case correct == attempted:
				want = GradeAPlus
			case accuracy >= 0.7-1e-12:
				want = GradeA
			case accuracy >= 0.5:
				want = GradeB
			default:
				want = GradeF
			}
			if got := GradeFor(correct, attempted); got != want {
				t.Fatalf("GradeFor(%d, %d) = %s, want %s", correct, attempted, got, want)
			}
		}
	}
}

func TestGradeFor_NoAttempts(t *testing.T) {
	if got := GradeFor(0, 0); got != GradeF {
		t.Errorf("GradeFor(0, 0) = %s, want F", got)
	}
}
