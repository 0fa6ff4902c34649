package entities

// DashboardStats holds the dashboard counters. ValidBills is derived from
// the other bill counts, never stored.
type DashboardStats struct {
	TotalBills       int `json:"total_bills"`
	OverchargedBills int `json:"overcharged_bills"`
	ValidBills       int `json:"valid_bills"`
	TotalComplaints  int `json:"total_complaints"`
}
