/*
File Name:  Events.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Live event stream over websocket. The API chains into the backend's filter
hooks and fans every event out to all connected subscribers. Slow subscribers
drop events instead of blocking the core.
*/

package webapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vicinet/core"
)

// Event types sent on the websocket.
const (
	EventNeighborUp      = "neighbor.up"
	EventNeighborDown    = "neighbor.down"
	EventNeighborExpired = "neighbor.expired"
	EventCallRegistered  = "call.registered"
	EventCallClosed      = "call.closed"
)

// Event is one entry on the event stream.
type Event struct {
	Type       string    `json:"type"`                 // One of the Event constants.
	Address    string    `json:"address"`              // Address the event is about.
	Competence string    `json:"competence,omitempty"` // Competence tag, for neighbor.up.
	Trust      float64   `json:"trust,omitempty"`      // Trust score, for neighbor.up.
	Priority   int       `json:"priority,omitempty"`   // Urgency rank, for call.registered.
	Timestamp  time.Time `json:"timestamp,omitempty"`  // Call receive time, for call.registered.
}

// subscriberBuffer is the per-subscriber event buffer size. Events beyond it are dropped.
const subscriberBuffer = 64

// installEventHooks chains the API into the backend's filters. Previously
// installed filters keep working; the API broadcasts after calling them.
func (api *WebapiInstance) installEventHooks() {
	previousUp := api.Backend.Filters.NeighborUp
	api.Backend.Filters.NeighborUp = func(ip core.Address, record core.NeighborRecord) {
		previousUp(ip, record)
		api.broadcast(Event{Type: EventNeighborUp, Address: string(ip), Trust: record.Trust, Competence: record.Competence})
	}

	previousDown := api.Backend.Filters.NeighborDown
	api.Backend.Filters.NeighborDown = func(ip core.Address) {
		previousDown(ip)
		api.broadcast(Event{Type: EventNeighborDown, Address: string(ip)})
	}

	previousExpired := api.Backend.Filters.NeighborExpired
	api.Backend.Filters.NeighborExpired = func(ip core.Address) {
		previousExpired(ip)
		api.broadcast(Event{Type: EventNeighborExpired, Address: string(ip)})
	}

	previousRegistered := api.Backend.Filters.CallRegistered
	api.Backend.Filters.CallRegistered = func(record core.CallRecord) {
		previousRegistered(record)
		api.broadcast(Event{Type: EventCallRegistered, Address: string(record.Address), Priority: record.Priority, Timestamp: record.Timestamp})
	}

	previousClosed := api.Backend.Filters.CallClosed
	api.Backend.Filters.CallClosed = func(ip core.Address) {
		previousClosed(ip)
		api.broadcast(Event{Type: EventCallClosed, Address: string(ip)})
	}
}

func (api *WebapiInstance) broadcast(event Event) {
	api.subscribersMutex.RLock()
	defer api.subscribersMutex.RUnlock()

	for _, channel := range api.subscribers {
		select {
		case channel <- event:
		default: // subscriber too slow, drop the event
		}
	}
}

func (api *WebapiInstance) subscribe() (id uuid.UUID, channel chan Event) {
	id = uuid.New()
	channel = make(chan Event, subscriberBuffer)

	api.subscribersMutex.Lock()
	api.subscribers[id] = channel
	api.subscribersMutex.Unlock()

	return id, channel
}

func (api *WebapiInstance) unsubscribe(id uuid.UUID) {
	api.subscribersMutex.Lock()
	delete(api.subscribers, id)
	api.subscribersMutex.Unlock()
}

/*
apiEventsStream streams neighbor and attending events

Request:    GET /events/ws
Result:     If successful, upgrades to a web-socket and sends JSON structure Event messages
*/
func (api *WebapiInstance) apiEventsStream(w http.ResponseWriter, r *http.Request) {
	// upgrade to web-socket
	conn, err := WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// gorilla will automatically respond with "400 Bad Request", no other response is therefore necessary
		return
	}

	id, channel := api.subscribe()
	defer api.unsubscribe(id)
	defer conn.Close()

	// The read pump discards incoming messages and unblocks the writer when
	// the client disconnects, even if no event is ever broadcast.
	disconnected := make(chan struct{})
	go func() {
		defer close(disconnected)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event := <-channel:
			if err := conn.WriteJSON(event); err != nil {
				return
			}

		case <-disconnected:
			return
		}
	}
}
