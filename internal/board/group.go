package board

import (
	"strings"

	"prioboard/internal/item"
)

// Group is one rendered bucket: a stable key, a heading, the dot color class
// it renders with, and its items in display order.
type Group struct {
	Key   string
	Label string
	Dot   string
	Items []item.Item
}

// GroupByPriority buckets items by the leading digit of their priority text.
// Bucketing is total: unrecognized priorities land in ongoing.
func GroupByPriority(items []item.Item) []Group {
	buckets := map[string][]item.Item{}
	for _, it := range items {
		key := item.PriorityBucket(it.Priority)
		buckets[key] = append(buckets[key], it)
	}
	return []Group{
		{Key: item.BucketPrimary, Label: "Primary", Dot: "primary", Items: buckets[item.BucketPrimary]},
		{Key: item.BucketSecondary, Label: "Secondary", Dot: "secondary", Items: buckets[item.BucketSecondary]},
		{Key: item.BucketConsidering, Label: "Considering", Dot: "considering", Items: buckets[item.BucketConsidering]},
		{Key: item.BucketOngoing, Label: "Ongoing / As Needed", Dot: "ongoing", Items: buckets[item.BucketOngoing]},
	}
}

// GroupByTrainingCategory buckets training items by audience category using
// an ordered decision list: supervisor signals are checked before all-sales
// coverage, then individual contributors split by capability, then a
// capability-only fallback. The default bucket is customer development.
func GroupByTrainingCategory(items []item.Item) []Group {
	var allSales, endUser, customerDev, supervisor []item.Item

	for _, it := range items {
		audience := strings.ToLower(it.Audience)
		capability := strings.ToLower(strings.Join(it.Capability, " "))
		project := strings.ToLower(it.Project)

		supportsAllSales := strings.Contains(capability, "all pro sales") ||
			strings.Contains(capability, "all sales") ||
			strings.Contains(capability, "allprosales")

		switch {
		case strings.Contains(project, "empower") || strings.Contains(audience, "supervisor"):
			supervisor = append(supervisor, it)
		case supportsAllSales:
			allSales = append(allSales, it)
		case strings.Contains(audience, "individual contributor") || strings.Contains(audience, "ic"):
			switch {
			case strings.Contains(capability, "customer development") ||
				strings.Contains(capability, "cdl") ||
				strings.Contains(capability, "customer dev"):
				customerDev = append(customerDev, it)
			case strings.Contains(capability, "end user") ||
				strings.Contains(capability, "enduser") ||
				strings.Contains(capability, "eu"):
				endUser = append(endUser, it)
			default:
				customerDev = append(customerDev, it)
			}
		default:
			switch {
			case strings.Contains(capability, "end user") || strings.Contains(capability, "eu"):
				endUser = append(endUser, it)
			case strings.Contains(capability, "customer development") || strings.Contains(capability, "cdl"):
				customerDev = append(customerDev, it)
			default:
				customerDev = append(customerDev, it)
			}
		}
	}

	return []Group{
		{Key: "allSales", Label: "All Sales", Dot: "primary", Items: allSales},
		{Key: "endUser", Label: "End User", Dot: "primary", Items: endUser},
		{Key: "customerDev", Label: "Customer Development", Dot: "secondary", Items: customerDev},
		{Key: "supervisor", Label: "Supervisor Training", Dot: "considering", Items: supervisor},
	}
}

var personOrder = []struct {
	name string
	dot  string
}{
	{"Hannah", "primary"},
	{"Allison", "secondary"},
	{"Madison", "considering"},
	{"Donielle", "ongoing"},
}

// GroupByPerson partitions a static list into the four named owner buckets.
// Items whose owner is not an exact match for one of the four names are
// silently dropped.
func GroupByPerson(items []item.Item) []Group {
	buckets := map[string][]item.Item{
		"Hannah": nil, "Allison": nil, "Madison": nil, "Donielle": nil,
	}
	for _, it := range items {
		if _, ok := buckets[it.Owner]; ok {
			buckets[it.Owner] = append(buckets[it.Owner], it)
		}
	}

	groups := make([]Group, 0, len(personOrder))
	for _, p := range personOrder {
		groups = append(groups, Group{Key: p.name, Label: p.name, Dot: p.dot, Items: buckets[p.name]})
	}
	return groups
}
