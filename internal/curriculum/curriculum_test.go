package curriculum

import "testing"

func TestDefaultIsWellFormed(t *testing.T) {
	topics := Default()
	if len(topics) == 0 {
		t.Fatal("curriculum is empty")
	}

	byID := make(map[string]bool, len(topics))
	for _, tp := range topics {
		if tp.ID == "" || tp.Name == "" || tp.Description == "" {
			t.Errorf("topic %+v has empty fields", tp)
		}
		if byID[tp.ID] {
			t.Errorf("duplicate topic ID %q", tp.ID)
		}
		byID[tp.ID] = true
	}

	if topics[0].PrerequisiteID != "" {
		t.Errorf("first topic %q has prerequisite %q, want none", topics[0].ID, topics[0].PrerequisiteID)
	}
	for i, tp := range topics {
		if tp.DisplayOrder != i+1 {
			t.Errorf("topic %q display order = %d, want %d", tp.ID, tp.DisplayOrder, i+1)
		}
		if i > 0 && tp.PrerequisiteID != topics[i-1].ID {
			t.Errorf("topic %q prerequisite = %q, want %q", tp.ID, tp.PrerequisiteID, topics[i-1].ID)
		}
	}
}
