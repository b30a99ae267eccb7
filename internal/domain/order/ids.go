// internal/domain/order/ids.go
package order

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IDGenerator issues the identifiers stamped on a new order
type IDGenerator interface {
	OrderID() string
	OrderNumber() string
	TrackingNumber() string
}

type randomIDs struct{}

// NewIDGenerator returns the production generator: time-ordered UUIDv7 ids,
// "HF-" order numbers and "1Z" tracking numbers
func NewIDGenerator() IDGenerator {
	return randomIDs{}
}

func (randomIDs) OrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "order-" + id.String()
}

func (randomIDs) OrderNumber() string {
	var b strings.Builder
	b.WriteString("HF-")
	for range 8 {
		b.WriteByte(orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))])
	}
	return b.String()
}

func (randomIDs) TrackingNumber() string {
	return fmt.Sprintf("1Z%d", 100000000+rand.IntN(900000000))
}
