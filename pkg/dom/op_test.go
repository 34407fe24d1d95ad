package dom

import "testing"

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreateElement, "CreateElement"},
		{OpCreateText, "CreateText"},
		{OpSetAttr, "SetAttr"},
		{OpRemoveAttr, "RemoveAttr"},
		{OpSetFlag, "SetFlag"},
		{OpClearFlag, "ClearFlag"},
		{OpAddListener, "AddListener"},
		{OpRemoveListener, "RemoveListener"},
		{OpInsert, "Insert"},
		{OpRemove, "Remove"},
		{OpSetText, "SetText"},
		{Op(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestOpClassification(t *testing.T) {
	if OpCreateElement.IsMutation() || OpCreateText.IsMutation() {
		t.Error("node creation should not count as a mutation")
	}
	if !OpSetAttr.IsMutation() {
		t.Error("SetAttr should be a mutation")
	}
	if !OpInsert.IsChildOp() || !OpRemove.IsChildOp() {
		t.Error("Insert and Remove should be child ops")
	}
	if OpSetText.IsChildOp() {
		t.Error("SetText should not be a child op")
	}
}

func TestListenerHandle(t *testing.T) {
	var got string
	l := NewListener(func(ev Event) { got = ev.Type })
	l.Handle(Event{Type: "click"})
	if got != "click" {
		t.Errorf("got %q, want click", got)
	}

	var nilListener *Listener
	nilListener.Handle(Event{Type: "click"})
}
