/*
File Name:  Neighbors.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package webapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vicinet/core"
	"github.com/vicinet/core/sanitize"
)

type apiNeighbor struct {
	Address    string   `json:"address"`    // Neighbor address.
	Competence string   `json:"competence"` // Competence tag.
	Interests  []string `json:"interests"`  // Interest tags.
	Trust      float64  `json:"trust"`      // Trust score.
	Alive      bool     `json:"alive"`      // Whether heard from during the current round.
}

type apiResponseNeighborList struct {
	Neighbors []apiNeighbor `json:"neighbors"`
}

/*
apiNeighborList lists all nodes currently in the vicinity, in insertion order
Request:    GET /neighbors
Result:     200 with JSON structure apiResponseNeighborList
*/
func (api *WebapiInstance) apiNeighborList(w http.ResponseWriter, r *http.Request) {
	response := apiResponseNeighborList{Neighbors: []apiNeighbor{}}

	for _, record := range api.Backend.Neighbors.ListRecords() {
		alive, _ := api.Backend.Neighbors.IsAlive(record.Address)
		response.Neighbors = append(response.Neighbors, apiNeighbor{
			Address:    string(record.Address),
			Competence: record.Competence,
			Interests:  record.Interests,
			Trust:      record.Trust,
			Alive:      alive,
		})
	}

	EncodeJSON(api.Backend, w, r, response)
}

/*
apiNeighborRegister injects a beacon observation, registering the sender as neighbor or marking it fresh
Request:    POST /neighbors/register with JSON structure apiNeighbor (the alive field is ignored)
Response:   204 Empty
            400 Invalid input
*/
func (api *WebapiInstance) apiNeighborRegister(w http.ResponseWriter, r *http.Request) {
	var input apiNeighbor
	if err := DecodeJSON(w, r, &input); err != nil {
		return
	}
	if input.Address == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	api.Backend.ReceiveBeacon(core.Address(input.Address), sanitize.Tag(input.Competence), sanitize.Tags(input.Interests), input.Trust)

	w.WriteHeader(http.StatusNoContent)
}

/*
apiNeighborUnregister removes a node from the neighbor table
Request:    GET /neighbors/unregister?address=[address]
Response:   204 Empty
            400 Invalid input
*/
func (api *WebapiInstance) apiNeighborUnregister(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	address := r.Form.Get("address")
	if address == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	api.Backend.RemoveNeighbor(core.Address(address))

	w.WriteHeader(http.StatusNoContent)
}

type apiResponseSelect struct {
	Status  int    `json:"status"`  // Status code: 0 = Ok, 1 = No neighbors around, 2 = No tier matched.
	Address string `json:"address"` // Address of the selected neighbor.
	Payload string `json:"payload"` // Critical information class for the selected neighbor.
}

/*
apiNeighborSelect selects the neighbor best suited to receive critical data.
Tiers are optional; if omitted, the configured competence tiers are used.
Request:    GET /neighbors/select?tiers=[comma separated competence tags]
Result:     200 with JSON structure apiResponseSelect
*/
func (api *WebapiInstance) apiNeighborSelect(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()

	var ip core.Address
	var payload string
	var err error

	if tiersParam := r.Form.Get("tiers"); tiersParam != "" {
		tiers := sanitize.Tags(strings.Split(tiersParam, ","))

		ip, err = api.Backend.Neighbors.SelectByTiers(tiers)
		if err == nil {
			var competence string
			if competence, err = api.Backend.Neighbors.Competence(ip); err == nil {
				payload = core.CriticalInfo(competence)
			}
		}
	} else {
		ip, payload, err = api.Backend.DelegateCritical()
	}

	response := apiResponseSelect{Address: string(ip), Payload: payload}
	switch {
	case errors.Is(err, core.ErrEmptyTable):
		response.Status = 1
	case errors.Is(err, core.ErrNoMatch):
		response.Status = 2
	}

	EncodeJSON(api.Backend, w, r, response)
}

type apiResponseTrust struct {
	Status     int     `json:"status"`     // Status code: 0 = Ok, 1 = Address unknown.
	Address    string  `json:"address"`    // Queried address.
	Competence string  `json:"competence"` // Remembered competence tag.
	Trust      float64 `json:"trust"`      // Remembered trust score.
}

/*
apiTrustLookup returns the remembered trust for an address, whether or not it is currently a neighbor
Request:    GET /trust?address=[address]
Result:     200 with JSON structure apiResponseTrust
            400 Invalid input
*/
func (api *WebapiInstance) apiTrustLookup(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	address := r.Form.Get("address")
	if address == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	response := apiResponseTrust{Address: address}

	competence, trust, found := api.Backend.TrustDB.Lookup(core.Address(address))
	if !found {
		response.Status = 1
	}
	response.Competence = competence
	response.Trust = trust

	EncodeJSON(api.Backend, w, r, response)
}
