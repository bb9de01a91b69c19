/*
File Name:  Status.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package webapi

import (
	"encoding/hex"
	"net/http"

	"github.com/vicinet/core"
)

func apiTest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type apiResponseStatus struct {
	Status           int  `json:"status"`           // Status code: 0 = Ok.
	CountNeighbors   int  `json:"countneighbors"`   // Count of nodes currently in the vicinity.
	CountAttending   int  `json:"countattending"`   // Count of pending attending calls.
	IsAnyoneAround   bool `json:"isanyonearound"`   // Whether at least one neighbor is known.
	EmergencyStatus  bool `json:"emergencystatus"`  // Whether this node is in emergency.
	ServiceRequested bool `json:"servicerequested"` // Whether this node already received service.
}

/*
apiStatus returns the current vicinity status of this node
Request:    GET /status
Result:     200 with JSON structure apiResponseStatus
*/
func (api *WebapiInstance) apiStatus(w http.ResponseWriter, r *http.Request) {
	status := apiResponseStatus{
		Status:           0,
		CountNeighbors:   api.Backend.Neighbors.Count(),
		CountAttending:   api.Backend.Attending.Count(),
		EmergencyStatus:  api.Backend.Profile.Status() == core.StatusEmergency,
		ServiceRequested: api.Backend.Profile.ServiceStatus(),
	}
	status.IsAnyoneAround = status.CountNeighbors > 0

	EncodeJSON(api.Backend, w, r, status)
}

type apiResponseNodeSelf struct {
	NodeID  string `json:"nodeid"`  // Public key in compressed form, hex encoded.
	Address string `json:"address"` // Node address on the vicinity network. Blake3 hash of the node ID.
}

/*
apiNodeSelf provides information about this node's identity
Request:    GET /node/self
Result:     200 with JSON structure apiResponseNodeSelf
*/
func (api *WebapiInstance) apiNodeSelf(w http.ResponseWriter, r *http.Request) {
	response := apiResponseNodeSelf{}
	response.Address = string(api.Backend.SelfAddress())

	_, publicKey := api.Backend.ExportPrivateKey()
	response.NodeID = hex.EncodeToString(publicKey.SerializeCompressed())

	EncodeJSON(api.Backend, w, r, response)
}
