package component

// Resource — подбираемый бонус, лежит, пока над ним не окажется указатель.
type Resource struct {
	Amount int
}
