package pricing

import (
	"sort"
	"time"
)

// DiscountType is the closed set of promotion tiers. Anything outside this
// set is never eligible; the eligibility switch below is exhaustive on
// purpose so a new tier cannot silently fall through.
type DiscountType string

const (
	DiscountPercentage     DiscountType = "percentage"
	DiscountExclusive      DiscountType = "exclusive"
	DiscountSeasonal       DiscountType = "seasonal"
	DiscountTransportation DiscountType = "transportation"
	DiscountLibert         DiscountType = "libert"
)

// ValueKind says how a discount value is applied: as a percentage of the
// pre-discount base or as a fixed amount subtracted directly.
type ValueKind string

const (
	ValuePercentage ValueKind = "percentage"
	ValueFixed      ValueKind = "fixed"
)

// DiscountValue is a per-market discount entry. Percent is used when Kind is
// ValuePercentage, Amount when Kind is ValueFixed.
type DiscountValue struct {
	Market  string
	Kind    ValueKind
	Percent float64
	Amount  Money
}

// DateRange bounds are optional; a nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range, treating missing bounds
// as open-ended.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Conditions are the optional gates an offer places on a stay.
type Conditions struct {
	StayPeriod     *DateRange
	BookingWindow  *DateRange
	MinNights      int
	MinBookings    int   // exclusive offers: prior bookings the agent must have
	MinStayDays    *int  // transportation offers; nil means the default of 5
	SeasonalMonths []int // 1..12; empty means any month
	IsDefault      bool  // libert offers qualify only when set
}

// Offer is a promotion as the eligibility and totals engines see it.
type Offer struct {
	ID               uint
	Type             DiscountType
	Description      string
	Active           bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
	ApplicableHotels []uint
	Values           []DiscountValue // per-market values
	FlatValue        *DiscountValue  // fallback when no market entry matches
	Conditions       Conditions
	EligibleAgents   []uint
	UsedAgents       []uint
}

// Role of the requesting user, as eligibility rules see it.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

// EligibilityContext is everything the filter needs to know about the stay
// and the user asking for it.
type EligibilityContext struct {
	Today         time.Time
	HotelID       uint
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	UserID        uint
	Role          Role
	PriorBookings int
	Market        string
}

// defaultTransportationMinStay applies when a transportation offer sets no
// explicit minimum stay.
const defaultTransportationMinStay = 5

// Eligible runs the ordered eligibility checks for a single offer. The offer
// is out as soon as any check fails.
func (o *Offer) Eligible(ctx EligibilityContext) bool {
	if !o.Active {
		return false
	}
	if o.ValidFrom != nil && ctx.Today.Before(*o.ValidFrom) {
		return false
	}
	if o.ValidTo != nil && ctx.Today.After(*o.ValidTo) {
		return false
	}
	if len(o.ApplicableHotels) > 0 && !containsID(o.ApplicableHotels, ctx.HotelID) {
		return false
	}
	if sp := o.Conditions.StayPeriod; sp != nil {
		if !sp.Contains(ctx.CheckIn) {
			return false
		}
		if sp.End != nil && ctx.CheckOut.After(*sp.End) {
			return false
		}
	}
	if bw := o.Conditions.BookingWindow; bw != nil && !bw.Contains(ctx.Today) {
		return false
	}
	if o.Conditions.MinNights > 0 && ctx.Nights < o.Conditions.MinNights {
		return false
	}

	switch o.Type {
	case DiscountExclusive:
		if ctx.Role != RoleAgent && ctx.Role != RoleAdmin {
			return false
		}
		if !containsID(o.EligibleAgents, ctx.UserID) {
			return false
		}
		if containsID(o.UsedAgents, ctx.UserID) {
			return false
		}
		if o.Conditions.MinBookings > 0 && ctx.PriorBookings < o.Conditions.MinBookings {
			return false
		}
		return true
	case DiscountTransportation:
		min := defaultTransportationMinStay
		if o.Conditions.MinStayDays != nil {
			min = *o.Conditions.MinStayDays
		}
		return ctx.Nights >= min
	case DiscountSeasonal:
		if len(o.Conditions.SeasonalMonths) == 0 {
			return true
		}
		month := int(ctx.Today.Month())
		for _, m := range o.Conditions.SeasonalMonths {
			if m == month {
				return true
			}
		}
		return false
	case DiscountLibert:
		return o.Conditions.IsDefault
	case DiscountPercentage:
		return true
	default:
		return false
	}
}

// EligibleOffers is the partitioned result of a catalog filter run. The user
// may pick at most one exclusive offer; auto-applied offers all stack.
type EligibleOffers struct {
	Exclusive   []Offer
	AutoApplied []Offer
}

// DefaultSelection returns the exclusive offer pre-selected for the user, or
// nil when none qualify. It is the head of the priority-sorted exclusive
// list; the user may still deselect it or pick another.
func (e EligibleOffers) DefaultSelection() *Offer {
	if len(e.Exclusive) == 0 {
		return nil
	}
	return &e.Exclusive[0]
}

// typePriority orders exclusive offers for default selection only. It has no
// effect on how auto-applied offers stack.
var typePriority = map[DiscountType]int{
	DiscountExclusive:      4,
	DiscountTransportation: 3,
	DiscountSeasonal:       2,
	DiscountPercentage:     2,
	DiscountLibert:         1,
}

// FilterOffers reduces the catalog to the offers applicable to this stay and
// partitions them into exclusive and auto-applied sets. Libert offers are a
// fallback tier: they survive only when nothing else qualifies. Ties in the
// priority sort keep catalog order.
func FilterOffers(catalog []Offer, ctx EligibilityContext) EligibleOffers {
	qualifying := make([]Offer, 0, len(catalog))
	nonLibert := false
	for _, o := range catalog {
		if !o.Eligible(ctx) {
			continue
		}
		if o.Type != DiscountLibert {
			nonLibert = true
		}
		qualifying = append(qualifying, o)
	}

	var out EligibleOffers
	for _, o := range qualifying {
		if o.Type == DiscountLibert && nonLibert {
			continue
		}
		if o.Type == DiscountExclusive {
			out.Exclusive = append(out.Exclusive, o)
		} else {
			out.AutoApplied = append(out.AutoApplied, o)
		}
	}

	sort.SliceStable(out.Exclusive, func(i, j int) bool {
		return typePriority[out.Exclusive[i].Type] > typePriority[out.Exclusive[j].Type]
	})
	return out
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
