package engine

import "testing"

func TestClassifyStress_Buckets(t *testing.T) {
	cases := []struct {
		bpm  int
		tier int
	}{
		{40, 2}, {55, 2}, {59, 2},
		{60, 3}, {65, 3}, {69, 3},
		{70, 5}, {75, 5}, {79, 5},
		{80, 7}, {85, 7}, {89, 7},
		{90, 8}, {95, 8}, {99, 8},
		{100, 9}, {120, 9}, {180, 9},
	}
	for _, c := range cases {
		if got := ClassifyStress(c.bpm); got != c.tier {
			t.Errorf("ClassifyStress(%d) = %d, want %d", c.bpm, got, c.tier)
		}
	}
}

func TestClassifyStress_BoundariesBelongToHigherBucket(t *testing.T) {
	boundaries := map[int]int{60: 3, 70: 5, 80: 7, 90: 8, 100: 9}
	for bpm, tier := range boundaries {
		if got := ClassifyStress(bpm); got != tier {
			t.Errorf("boundary %d should map to higher bucket %d, got %d", bpm, tier, got)
		}
	}
}

func TestShouldTriggerIntervention(t *testing.T) {
	for tier := 2; tier <= 9; tier++ {
		want := tier >= 7
		if got := ShouldTriggerIntervention(tier); got != want {
			t.Errorf("ShouldTriggerIntervention(%d) = %v, want %v", tier, got, want)
		}
	}
}
