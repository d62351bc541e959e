package booking

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/partner"
)

// CouponResult is the outcome of validating a coupon code.
type CouponResult struct {
	Valid    bool
	Discount float64
}

// CouponValidator maps a coupon code to a discount percent.
type CouponValidator interface {
	Validate(ctx context.Context, code string) CouponResult
}

const (
	localCouponCode     = "welcome10"
	localCouponDiscount = 10
)

// LocalCouponValidator recognizes a single fixed code, case-insensitively.
type LocalCouponValidator struct{}

// NewLocalCouponValidator creates the local-rule validator
func NewLocalCouponValidator() *LocalCouponValidator {
	return &LocalCouponValidator{}
}

func (v *LocalCouponValidator) Validate(ctx context.Context, code string) CouponResult {
	if strings.EqualFold(strings.TrimSpace(code), localCouponCode) {
		return CouponResult{Valid: true, Discount: localCouponDiscount}
	}
	return CouponResult{}
}

// RemoteCouponValidator delegates to the reservation partner. A transport
// failure yields "invalid" rather than an error: the guest loses the
// discount, not the booking.
type RemoteCouponValidator struct {
	client *partner.Client
}

// NewRemoteCouponValidator creates the partner-backed validator
func NewRemoteCouponValidator(client *partner.Client) *RemoteCouponValidator {
	return &RemoteCouponValidator{client: client}
}

func (v *RemoteCouponValidator) Validate(ctx context.Context, code string) CouponResult {
	result, err := v.client.ValidateCoupon(ctx, code)
	if err != nil {
		log.Warn().Err(err).Msg("Remote coupon validation failed, treating as invalid")
		return CouponResult{}
	}
	return CouponResult{Valid: result.Valid, Discount: result.Discount}
}
