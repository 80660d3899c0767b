package dto

import "github.com/giapha-vn/giapha/pkg/types"

// AddressingResponse is the addressing result for one target person.
type AddressingResponse struct {
	ReferenceID string               `json:"referenceId"`
	TargetID    string               `json:"targetId"`
	Addressing  types.AddressingInfo `json:"addressing"`
}

// AddressAllResponse is the batch addressing result for a whole tree.
type AddressAllResponse struct {
	ReferenceID string                           `json:"referenceId"`
	Results     map[string]*types.AddressingInfo `json:"results"`
}

// ClustersResponse lists family clusters and their members.
type ClustersResponse struct {
	Clusters map[string][]string `json:"clusters"`
}
