package threecommas

import "context"

// MarketplaceService talks to /public/api/ver1/marketplace.
type MarketplaceService struct {
	*Service
}

// MarketplaceOptions pages and sorts marketplace listings.
type MarketplaceOptions struct {
	Limit          int
	Offset         int
	Scope          string // all, paid or free; Items only
	Order          string // subscribers, name or newest
	OrderDirection string // asc or desc; ItemSignals only
	Locale         string
}

func (o *MarketplaceOptions) params() Params {
	if o == nil {
		return nil
	}
	var p Params
	p = addNonZero(p, "limit", o.Limit)
	p = addNonZero(p, "offset", o.Offset)
	p = addNonZero(p, "scope", o.Scope)
	p = addNonZero(p, "order", o.Order)
	p = addNonZero(p, "orderDirection", o.OrderDirection)
	p = addNonZero(p, "locale", o.Locale)
	return p
}

// Items lists the signal providers on the marketplace.
func (s *MarketplaceService) Items(ctx context.Context, opts *MarketplaceOptions) ([]MarketplaceItem, error) {
	var items []MarketplaceItem
	if err := s.get(ctx, "/items", opts.params(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemSignals lists the signals of one marketplace item.
func (s *MarketplaceService) ItemSignals(
	ctx context.Context,
	itemID int64,
	opts *MarketplaceOptions,
) ([]MarketplaceItemSignal, error) {
	var signals []MarketplaceItemSignal
	if err := s.get(ctx, idPath(itemID, "signals"), opts.params(), &signals); err != nil {
		return nil, err
	}
	return signals, nil
}
