package dom

// Op is the type of a render-target mutation.
type Op uint8

const (
	OpCreateElement  Op = 0x01 // New element node
	OpCreateText     Op = 0x02 // New text node
	OpSetAttr        Op = 0x03 // Set/update attribute
	OpRemoveAttr     Op = 0x04 // Remove attribute
	OpSetFlag        Op = 0x05 // Set boolean property
	OpClearFlag      Op = 0x06 // Clear boolean property
	OpAddListener    Op = 0x07 // Register event listener
	OpRemoveListener Op = 0x08 // Unregister event listener
	OpInsert         Op = 0x09 // Insert or move child
	OpRemove         Op = 0x0A // Detach node
	OpSetText        Op = 0x0B // Update text content
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpSetFlag:
		return "SetFlag"
	case OpClearFlag:
		return "ClearFlag"
	case OpAddListener:
		return "AddListener"
	case OpRemoveListener:
		return "RemoveListener"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpSetText:
		return "SetText"
	default:
		return "Unknown"
	}
}

// IsMutation reports whether op changes an existing live tree, as opposed to
// creating a detached node.
func (op Op) IsMutation() bool {
	return op != OpCreateElement && op != OpCreateText
}

// IsChildOp reports whether op changes the child list of some node.
func (op Op) IsChildOp() bool {
	return op == OpInsert || op == OpRemove
}

// Record describes one operation applied to a render target.
type Record struct {
	Op    Op     `json:"op"`
	Tag   string `json:"tag,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}
