package alexa

import (
	"context"
	"fmt"

	"github.com/voxkit/voxkit/core"
)

// DelegateDirective hands slot-filling for the current intent back to the
// platform's dialog manager. The optional slot map carries literal values
// passed through as-is; a nil value requests the value from the user.
//
// Delegation appends to the directive list without claiming an exclusivity
// slot: more than one delegate entry is technically appendable, though only
// one is meaningful per turn. The permissive behavior is kept deliberately.
type DelegateDirective struct {
	slots map[string]any
}

// NewDelegate is the factory for the alexa.delegate key. The slot map is
// read from the "slots" parameter when present.
func NewDelegate(desc core.Descriptor) (core.Directive, error) {
	var slots map[string]any
	if v, ok := desc.Param("slots"); ok {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, core.NewUsageError(Platform, KeyDelegate,
				fmt.Sprintf("slots parameter is %T, want map[string]any", v))
		}
		slots = m
	}
	return &DelegateDirective{slots: slots}, nil
}

// Apply builds the updated-intent record and appends the delegate entry.
// A turn without a resolved intent cannot delegate; that is a usage error,
// not a silent no-op.
func (d *DelegateDirective) Apply(_ context.Context, reply core.Reply, event core.Event, _ *core.Transition) error {
	r, err := replyOf(reply, KeyDelegate)
	if err != nil {
		return err
	}
	intent := event.Intent()
	if intent == nil {
		return core.NewUsageError(Platform, KeyDelegate, "no resolved intent to delegate")
	}

	updated := &UpdatedIntent{
		Name:               intent.Name,
		ConfirmationStatus: "NONE",
	}
	if len(d.slots) > 0 {
		updated.Slots = make(map[string]Slot, len(d.slots))
		for name, value := range d.slots {
			slot := Slot{Name: name, ConfirmationStatus: "NONE"}
			if value != nil {
				if s, ok := value.(string); ok {
					slot.Value = s
				} else {
					slot.Value = fmt.Sprintf("%v", value)
				}
			}
			updated.Slots[name] = slot
		}
	}

	r.append(DelegateEntry{Type: "Dialog.Delegate", UpdatedIntent: updated})
	return nil
}
