package game

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Dosada05/prediction-game/brackets"
)

func TestThirdPlaceSelectionAddRemove(t *testing.T) {
	s := newThirdPlaceSelection()

	if err := s.add("A3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !s.Has("A3") || s.Size() != 1 {
		t.Errorf("selection after add: has=%v size=%d", s.Has("A3"), s.Size())
	}

	s.remove("A3")
	if s.Has("A3") || s.Size() != 0 {
		t.Errorf("selection after remove: has=%v size=%d", s.Has("A3"), s.Size())
	}
}

func TestThirdPlaceSelectionNinthAddRejected(t *testing.T) {
	s := newThirdPlaceSelection()
	for i := 0; i < brackets.ThirdPlaceQuota; i++ {
		if err := s.add(fmt.Sprintf("T%d", i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if !s.Complete() {
		t.Fatal("selection not complete at quota")
	}

	before := s.TeamIDs()
	if err := s.add("T9"); !errors.Is(err, ErrSelectionFull) {
		t.Fatalf("9th add: got %v, want ErrSelectionFull", err)
	}
	if !reflect.DeepEqual(s.TeamIDs(), before) {
		t.Errorf("rejected add changed the set: %v -> %v", before, s.TeamIDs())
	}
}

func TestThirdPlaceSelectionRetain(t *testing.T) {
	s := newThirdPlaceSelection()
	for _, id := range []string{"A3", "B3", "C3"} {
		if err := s.add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	if dropped := s.retain(map[string]bool{"A3": true, "B3": true, "C3": true}); dropped {
		t.Error("retain with full keep set reported a drop")
	}

	if dropped := s.retain(map[string]bool{"A3": true, "C3": true}); !dropped {
		t.Error("retain did not report dropping B3")
	}
	if want := []string{"A3", "C3"}; !reflect.DeepEqual(s.TeamIDs(), want) {
		t.Errorf("after retain: %v, want %v", s.TeamIDs(), want)
	}
}

func TestThirdPlaceSelectionTeamIDsSorted(t *testing.T) {
	s := newThirdPlaceSelection()
	for _, id := range []string{"K3", "B3", "F3"} {
		if err := s.add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if want := []string{"B3", "F3", "K3"}; !reflect.DeepEqual(s.TeamIDs(), want) {
		t.Errorf("TeamIDs() = %v, want %v", s.TeamIDs(), want)
	}
}
