package entities

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
)

var idRegexp = regexp.MustCompile(`^\d+$`)

// TrayItem is one menu item selection with its chosen options.
type TrayItem struct {
	ItemID   string   `json:"item_id"`
	Options  []string `json:"options,omitempty"`
	Quantity int      `json:"quantity"`
}

func NewTrayItem(itemID string, quantity int, options ...string) *TrayItem {
	return &TrayItem{ItemID: itemID, Quantity: quantity, Options: options}
}

// String renders the item as "<id>/<qty>[,<option>...]".
func (i *TrayItem) String() string {
	var b strings.Builder
	b.WriteString(i.ItemID)
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(i.Quantity))
	for _, opt := range i.Options {
		b.WriteByte(',')
		b.WriteString(opt)
	}
	return b.String()
}

// Tray is an ordered collection of items for one order.
type Tray struct {
	Items []*TrayItem `json:"items"`
}

func NewTray(items ...*TrayItem) *Tray {
	return &Tray{Items: items}
}

// Add appends an item to the tray.
func (t *Tray) Add(item *TrayItem) {
	t.Items = append(t.Items, item)
}

// String returns the wire form expected by the order endpoint.
func (t *Tray) String() string {
	parts := make([]string, 0, len(t.Items))
	for _, item := range t.Items {
		if item == nil {
			continue
		}
		parts = append(parts, item.String())
	}
	return strings.Join(parts, "+")
}

func (t *Tray) Validate() error {
	const subject = "Tray"

	if len(t.Items) == 0 {
		return errs.NewValidationError([]string{
			validationMessage(subject, "Items", "empty, must contain at least one item", ""),
		})
	}

	var messages []string

	for _, item := range t.Items {
		if item == nil {
			messages = append(messages, validationMessage(subject, "Item", "required", ""))
			continue
		}
		if !idRegexp.MatchString(item.ItemID) {
			messages = append(messages, validationMessage(subject, "Item ID", "invalid, must be integer", item.ItemID))
		}
		if item.Quantity < 1 {
			messages = append(messages, validationMessage(subject, "Quantity", "invalid, must be positive",
				strconv.Itoa(item.Quantity)))
		}
		for _, opt := range item.Options {
			if !idRegexp.MatchString(opt) {
				messages = append(messages, validationMessage(subject, "Option ID", "invalid, must be integer", opt))
			}
		}
	}

	return errs.NewValidationError(messages)
}
