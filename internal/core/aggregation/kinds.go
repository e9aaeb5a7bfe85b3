package aggregation

import (
	"fmt"
	"sort"
)

// Definition describes where a kind lives and how it is refreshed.
// Key is the natural key tuple, which is also the upsert conflict target.
type Definition struct {
	Kind    Kind
	Table   string
	Key     []string
	Measure string
	Policy  Policy
}

// Kinds is the registry of every aggregate the refresh engine maintains.
var Kinds = map[Kind]Definition{
	KindProductSales: {
		Kind:    KindProductSales,
		Table:   "product_sales_aggregated",
		Key:     []string{"sale_date", "id_product"},
		Measure: "total_sold",
		Policy:  PolicyIncremental,
	},
	KindCategoryRevenue: {
		Kind:    KindCategoryRevenue,
		Table:   "category_revenue_aggregated",
		Key:     []string{"sale_date", "id_category"},
		Measure: "total_revenue",
		Policy:  PolicyIncremental,
	},
	KindCustomerPurchases: {
		Kind:    KindCustomerPurchases,
		Table:   "customer_purchases_aggregated",
		Key:     []string{"sale_date", "id_user"},
		Measure: "total_purchases",
		Policy:  PolicyIncremental,
	},
	KindYearlyRollup: {
		Kind:    KindYearlyRollup,
		Table:   "yearly_total_sales",
		Key:     []string{"year"},
		Measure: "total_sales",
		Policy:  PolicyFullRebuild,
	},
}

// ParseKind resolves a kind name, rejecting anything not in the registry.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := Kinds[k]; !ok {
		return "", fmt.Errorf("unknown aggregate kind %q", s)
	}
	return k, nil
}

// KindsWithPolicy returns the registered kinds using p, in stable name order.
func KindsWithPolicy(p Policy) []Kind {
	var kinds []Kind
	for k, def := range Kinds {
		if def.Policy == p {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
