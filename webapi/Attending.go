/*
File Name:  Attending.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package webapi

import (
	"net/http"
	"time"

	"github.com/vicinet/core"
	"github.com/vicinet/core/sanitize"
)

type apiAttendingCall struct {
	Address      string    `json:"address"`      // The peer requesting attention.
	CriticalData string    `json:"criticaldata"` // Opaque payload carried by the call.
	Priority     int       `json:"priority"`     // Urgency rank. 1 is most urgent.
	Timestamp    time.Time `json:"timestamp"`    // When the call was received.
}

type apiResponseAttendingList struct {
	Calls []apiAttendingCall `json:"calls"`
}

/*
apiAttendingList lists all pending attending calls, in insertion order
Request:    GET /attending
Result:     200 with JSON structure apiResponseAttendingList
*/
func (api *WebapiInstance) apiAttendingList(w http.ResponseWriter, r *http.Request) {
	response := apiResponseAttendingList{Calls: []apiAttendingCall{}}

	for _, record := range api.Backend.Attending.ListRecords() {
		response.Calls = append(response.Calls, apiAttendingCall{
			Address:      string(record.Address),
			CriticalData: record.CriticalData,
			Priority:     record.Priority,
			Timestamp:    record.Timestamp,
		})
	}

	EncodeJSON(api.Backend, w, r, response)
}

/*
apiAttendingRegister registers a pending attending call.
The timestamp is optional; if omitted, the current time is used.
Request:    POST /attending/register with JSON structure apiAttendingCall
Response:   204 Empty
            400 Invalid input
*/
func (api *WebapiInstance) apiAttendingRegister(w http.ResponseWriter, r *http.Request) {
	var input apiAttendingCall
	if err := DecodeJSON(w, r, &input); err != nil {
		return
	}
	if input.Address == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}
	if input.Timestamp.IsZero() {
		input.Timestamp = time.Now()
	}

	api.Backend.ReceiveAttendingRequest(core.Address(input.Address), sanitize.Payload(input.CriticalData), input.Priority, input.Timestamp)

	w.WriteHeader(http.StatusNoContent)
}

/*
apiAttendingClose closes a pending attending call
Request:    GET /attending/close?address=[address]
Response:   204 Empty
            400 Invalid input
*/
func (api *WebapiInstance) apiAttendingClose(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	address := r.Form.Get("address")
	if address == "" {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	api.Backend.ReceiveAttendingClose(core.Address(address))

	w.WriteHeader(http.StatusNoContent)
}
