package parcel

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

// trackingCodePrefix brands every code issued by this system.
const trackingCodePrefix = "SRL"

// TrackingCode is the public identifier printed on a parcel's label. Codes
// are derived from the registration instant at microsecond precision, which
// makes them unique as long as two parcels are not registered within the
// same microsecond.
type TrackingCode string

// NewTrackingCode issues a code for a parcel registered at the given instant.
func NewTrackingCode(registeredAt time.Time) TrackingCode {
	micros := registeredAt.Nanosecond() / int(time.Microsecond)
	return TrackingCode(fmt.Sprintf("%s%s%06d", trackingCodePrefix,
		registeredAt.Format("20060102150405"), micros))
}

// Validate checks the code carries the expected prefix and timestamp body.
func (c TrackingCode) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	if !strings.HasPrefix(string(c), trackingCodePrefix) || len(c) != len(trackingCodePrefix)+20 {
		return errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q is not a valid tracking code", string(c)))
	}
	return nil
}

// String implements fmt.Stringer.
func (c TrackingCode) String() string {
	return string(c)
}
