package route

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrPriceListIsNotConstructed is returned when a PriceList instance
// was not created through NewPriceList or RestorePriceList.
var ErrPriceListIsNotConstructed = errors.New("PriceList must be created via NewPriceList or RestorePriceList")

// PriceList is the single pricing rule of one relation: a base price
// plus a per-stop price scaled linearly by the number of stop-index
// positions a shipment traverses. A relation without a price list
// yields a zero price; that degenerate case is handled by the
// availability search, not here.
type PriceList struct {
	relationID   kernel.UUID
	basePrice    float64
	pricePerStop float64

	isConstructed bool
}

// NewPriceList creates the price list for a relation. Both components
// must be non-negative.
func NewPriceList(relationID kernel.UUID, basePrice, pricePerStop float64) (*PriceList, error) {
	p := &PriceList{isConstructed: true}

	if err := errors.Join(
		p.setRelationID(relationID),
		p.setBasePrice(basePrice),
		p.setPricePerStop(pricePerStop),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePriceList rebuilds a price list from persistence.
func RestorePriceList(relationID kernel.UUID, basePrice, pricePerStop float64) (*PriceList, error) {
	return NewPriceList(relationID, basePrice, pricePerStop)
}

// Validate ensures the price list came from a constructor.
func (p *PriceList) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPriceListIsNotConstructed
	}
	return nil
}

// RelationID returns the relation this price list belongs to.
func (p *PriceList) RelationID() kernel.UUID {
	return p.relationID
}

// BasePrice returns the fixed price component.
func (p *PriceList) BasePrice() float64 {
	return p.basePrice
}

// PricePerStop returns the price of each traversed stop position.
func (p *PriceList) PricePerStop() float64 {
	return p.pricePerStop
}

// PriceFor computes the segment price for the given number of traversed
// stop-index positions.
func (p *PriceList) PriceFor(stopsTraversed int) float64 {
	if stopsTraversed < 0 {
		stopsTraversed = -stopsTraversed
	}
	return p.basePrice + float64(stopsTraversed)*p.pricePerStop
}

func (p *PriceList) setRelationID(relationID kernel.UUID) error {
	if err := relationID.Validate(); err != nil {
		return err
	}
	p.relationID = relationID
	return nil
}

func (p *PriceList) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidError("basePrice")
	}
	p.basePrice = basePrice
	return nil
}

func (p *PriceList) setPricePerStop(pricePerStop float64) error {
	if pricePerStop < 0 {
		return errs.NewValueIsInvalidError("pricePerStop")
	}
	p.pricePerStop = pricePerStop
	return nil
}
