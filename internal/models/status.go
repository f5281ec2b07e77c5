package models

// StatusSnapshot is the dashboard snapshot served by /api/status. The
// headline figures are fixed marketing constants at this deployment tier;
// the network and service counts are derived from the repository.
type StatusSnapshot struct {
	ValidatorHealth string `json:"validatorHealth"`
	RPCResponse     string `json:"rpcResponse"`
	NetworkCoverage string `json:"networkCoverage"`
	TotalStaked     string `json:"totalStaked"`
	Delegators      int    `json:"delegators"`
	Rewards         string `json:"rewards"`
	Commission      string `json:"commission"`
	Uptime          string `json:"uptime"`
	Networks        int    `json:"networks"`
	Validators      int    `json:"validators"`
}

// StatusProvider serves the current dashboard snapshot.
type StatusProvider interface {
	Snapshot() StatusSnapshot
}
