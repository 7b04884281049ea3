package core

import "testing"

func TestPickerFiltersAndRanksPrefixFirst(t *testing.T) {
	p := NewPicker("jump", []PickerItem{
		{ID: "m", Label: "Scheduled Meetings"},
		{ID: "s", Label: "Meeting Stats"},
		{ID: "d", Label: "Select Date"},
	})
	for _, r := range "me" {
		p.HandleKey(string(r))
	}
	items := p.Items()
	if len(items) != 2 {
		t.Fatalf("items = %+v, want 2 matches", items)
	}
	if items[0].ID != "s" || items[1].ID != "m" {
		t.Fatalf("order = %q, %q; want the prefix match s first", items[0].ID, items[1].ID)
	}
}

func TestPickerCursorClampsAfterFilter(t *testing.T) {
	p := NewPicker("jump", []PickerItem{
		{ID: "1", Label: "Alpha"},
		{ID: "2", Label: "Beta"},
		{ID: "3", Label: "Gamma"},
	})
	if res := p.HandleKey("down"); res.Action != PickerActionMoved {
		t.Fatalf("down action = %v, want moved", res.Action)
	}
	p.HandleKey("down")
	if p.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", p.Cursor())
	}
	p.SetQuery("alp")
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d after filter, want 0", p.Cursor())
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "1" {
		t.Fatalf("enter = %+v, want Alpha selected", res)
	}
}

func TestPickerBackspaceAndCancel(t *testing.T) {
	p := NewPicker("jump", []PickerItem{{ID: "1", Label: "One"}})
	p.HandleKey("x")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches for x")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter on empty list = %v, want none", res.Action)
	}
	p.HandleKey("backspace")
	if p.Query() != "" || len(p.Items()) != 1 {
		t.Fatalf("query = %q items = %d after backspace", p.Query(), len(p.Items()))
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("esc = %v, want cancelled", res.Action)
	}
}
