/*
File Name:  Profile.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

The profile endpoints are the configuration/attribute surface of the node:
the host application reads and sets this node's own role through them.
*/

package webapi

import (
	"net/http"

	"github.com/vicinet/core"
	"github.com/vicinet/core/sanitize"
)

type apiProfile struct {
	Status          int      `json:"status"`          // 0 = Normal, 1 = Emergency.
	Competence      string   `json:"competence"`      // This node's competence tag.
	Interests       []string `json:"interests"`       // This node's interest tags.
	ServiceStatus   bool     `json:"servicestatus"`   // Whether this node already received service.
	ServicePriority int      `json:"servicepriority"` // Priority when this node itself requests service.
}

/*
apiProfileRead returns this node's own profile
Request:    GET /profile
Result:     200 with JSON structure apiProfile
*/
func (api *WebapiInstance) apiProfileRead(w http.ResponseWriter, r *http.Request) {
	profile := api.Backend.Profile

	EncodeJSON(api.Backend, w, r, apiProfile{
		Status:          profile.Status(),
		Competence:      profile.Competence(),
		Interests:       profile.Interests(),
		ServiceStatus:   profile.ServiceStatus(),
		ServicePriority: profile.ServicePriority(),
	})
}

/*
apiProfileWrite updates this node's own profile
Request:    POST /profile with JSON structure apiProfile
Response:   204 Empty
            400 Invalid input
*/
func (api *WebapiInstance) apiProfileWrite(w http.ResponseWriter, r *http.Request) {
	var input apiProfile
	if err := DecodeJSON(w, r, &input); err != nil {
		return
	}
	if input.Status != core.StatusNormal && input.Status != core.StatusEmergency {
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	profile := api.Backend.Profile
	profile.SetStatus(input.Status)
	profile.SetCompetence(sanitize.Tag(input.Competence))
	profile.SetInterests(sanitize.Tags(input.Interests))
	profile.SetServiceStatus(input.ServiceStatus)
	profile.SetServicePriority(input.ServicePriority)

	w.WriteHeader(http.StatusNoContent)
}
