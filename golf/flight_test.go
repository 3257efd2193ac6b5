package golf

import "testing"

func TestClubModelClampsIndex(t *testing.T) {
	model := NewClubModel()

	longest, _, _ := model.Flight(-3)
	if longest != model.Clubs[0].Carry {
		t.Errorf("negative index carry = %f, want %f", longest, model.Clubs[0].Carry)
	}
	last := model.Clubs[len(model.Clubs)-1]
	shortest, _, _ := model.Flight(100)
	if shortest != last.Carry {
		t.Errorf("oversized index carry = %f, want %f", shortest, last.Carry)
	}
}

func TestEveryDistanceHasAClub(t *testing.T) {
	clubs := DefaultClubs()
	for d := 1.0; d < 400; d += 1 {
		found := false
		for _, c := range clubs {
			if c.Fits(d) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no club fits distance %f", d)
		}
	}
}
