package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/spicegarden/order-service/internal/models"
)

// receiptBucket groups retries of the same cart into one gateway receipt.
const receiptBucket = time.Minute

// receiptFor derives a deterministic gateway receipt from the user, the cart
// lines, and a coarse time bucket. An immediate client retry of the same
// checkout reuses the receipt instead of minting a new one per attempt,
// while distinct attempts still get distinct gateway orders. Razorpay caps
// receipts at 40 characters, so the digest is truncated.
func receiptFor(userID string, cart []models.CartLine, at time.Time) string {
	h := sha256.New()
	io.WriteString(h, userID)
	for _, line := range cart {
		fmt.Fprintf(h, "|%s:%d", line.ID, line.Quantity)
	}
	fmt.Fprintf(h, "|%d", at.Unix()/int64(receiptBucket.Seconds()))
	return "rcpt_" + hex.EncodeToString(h.Sum(nil))[:32]
}
