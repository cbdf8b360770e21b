// Package cart provides an in-memory cart container for clients building a
// checkout submission. A Cart is injected where needed rather than shared as
// a package-level singleton, and is safe for concurrent use.
package cart

import (
	"context"
	"sort"
	"sync"

	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

// Line is one cart entry: a menu item snapshot plus the chosen quantity.
type Line struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal is the line price times quantity.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart accumulates lines keyed by item id. Adding the same item again
// increments its quantity instead of duplicating the line.
type Cart struct {
	mu          sync.Mutex
	lines       map[string]*Line
	subscribers []chan []Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// Add puts an item in the cart, or bumps its quantity if already present.
func (c *Cart) Add(itemID, name string, unitPrice float64, quantity int) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[itemID]; ok {
		line.Quantity += quantity
	} else {
		c.lines[itemID] = &Line{ItemID: itemID, Name: name, UnitPrice: unitPrice, Quantity: quantity}
	}
	c.notifyLocked()
}

// SetQuantity pins an item's quantity. Zero or negative removes the line.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[itemID]
	if !ok {
		return
	}
	if quantity <= 0 {
		delete(c.lines, itemID)
	} else {
		line.Quantity = quantity
	}
	c.notifyLocked()
}

// Remove drops an item from the cart entirely.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lines[itemID]; !ok {
		return
	}
	delete(c.lines, itemID)
	c.notifyLocked()
}

// Clear empties the cart, typically after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return
	}
	c.lines = make(map[string]*Line)
	c.notifyLocked()
}

// Lines returns a snapshot of the cart contents, sorted by item name for
// stable presentation.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Count reports the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Total reports the sum of all line subtotals.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Subscribe returns a channel that receives a fresh snapshot after every
// mutation. The channel closes when ctx is cancelled. Slow consumers miss
// intermediate snapshots rather than blocking mutations.
func (c *Cart) Subscribe(ctx context.Context) <-chan []Line {
	ch := make(chan []Line, 1)

	c.mu.Lock()
	c.subscribers = append(c.subscribers, ch)
	ch <- c.snapshotLocked()
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		for i, sub := range c.subscribers {
			if sub == ch {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				break
			}
		}
		c.mu.Unlock()
		close(ch)
	}()

	return ch
}

// CheckoutInput converts the cart contents into an order creation input for
// the given customer.
func (c *Cart) CheckoutInput(name, contact string) ports.CreateOrderInput {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.snapshotLocked()
	lines := make([]ports.OrderLineInput, len(snapshot))
	total := 0.0
	for i, l := range snapshot {
		lines[i] = ports.OrderLineInput{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
		total += l.Subtotal()
	}
	return ports.CreateOrderInput{
		CustomerName:    name,
		CustomerContact: contact,
		Lines:           lines,
		TotalAmount:     total,
	}
}

func (c *Cart) snapshotLocked() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// notifyLocked pushes the current snapshot to every subscriber without
// blocking; a subscriber with a full buffer gets the stale entry replaced.
func (c *Cart) notifyLocked() {
	snapshot := c.snapshotLocked()
	for _, ch := range c.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
