/*
File Name:  Profile.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

The profile holds this node's own role in the vicinity: health status,
competence, interests and service state. It is pure value state read by the
selection and dispatch logic; no relation to the neighbor or attending tables.
*/

package core

import (
	"sync"
)

// Health status of a node.
const (
	StatusNormal    = 0 // No help needed.
	StatusEmergency = 1 // The node holds critical data that must be delegated.
)

// Profile is this node's own status, competence, interests and service fields.
type Profile struct {
	status          int
	competence      string
	interests       []string
	serviceStatus   bool
	servicePriority int
	sync.RWMutex
}

// NewProfile creates a profile with the given competence and interests.
func NewProfile(competence string, interests []string) *Profile {
	return &Profile{
		competence: competence,
		interests:  append([]string(nil), interests...),
	}
}

// Status returns the node's health status.
func (profile *Profile) Status() int {
	profile.RLock()
	defer profile.RUnlock()

	return profile.status
}

// SetStatus sets the node's health status.
func (profile *Profile) SetStatus(status int) {
	profile.Lock()
	profile.status = status
	profile.Unlock()
}

// Competence returns the node's competence tag.
func (profile *Profile) Competence() string {
	profile.RLock()
	defer profile.RUnlock()

	return profile.competence
}

// SetCompetence sets the node's competence tag.
func (profile *Profile) SetCompetence(competence string) {
	profile.Lock()
	profile.competence = competence
	profile.Unlock()
}

// HasEqualCompetence indicates whether the given tag equals this node's own competence.
func (profile *Profile) HasEqualCompetence(competence string) bool {
	profile.RLock()
	defer profile.RUnlock()

	return profile.competence == competence
}

// Interests returns the node's interest tags.
func (profile *Profile) Interests() []string {
	profile.RLock()
	defer profile.RUnlock()

	return append([]string(nil), profile.interests...)
}

// SetInterests sets the node's interest tags.
func (profile *Profile) SetInterests(interests []string) {
	profile.Lock()
	profile.interests = append([]string(nil), interests...)
	profile.Unlock()
}

// ServiceStatus indicates whether the node already received service.
func (profile *Profile) ServiceStatus() bool {
	profile.RLock()
	defer profile.RUnlock()

	return profile.serviceStatus
}

// SetServiceStatus sets whether the node already received service.
func (profile *Profile) SetServiceStatus(serviceStatus bool) {
	profile.Lock()
	profile.serviceStatus = serviceStatus
	profile.Unlock()
}

// ServicePriority returns the node's service priority.
func (profile *Profile) ServicePriority() int {
	profile.RLock()
	defer profile.RUnlock()

	return profile.servicePriority
}

// SetServicePriority sets the node's service priority.
func (profile *Profile) SetServicePriority(servicePriority int) {
	profile.Lock()
	profile.servicePriority = servicePriority
	profile.Unlock()
}

// Critical information classes handed out depending on the competence of the
// receiving node. The mapping is fixed; unknown competences receive the most
// restricted class.
var criticalInfoByCompetence = map[string]string{
	"doctor":    "InfoA",
	"nurse":     "InfoB",
	"caregiver": "InfoC",
}

const criticalInfoDefault = "InfoD"

// CriticalInfo returns the critical information class to hand to a node of
// the given competence.
func CriticalInfo(competence string) string {
	if info, ok := criticalInfoByCompetence[competence]; ok {
		return info
	}
	return criticalInfoDefault
}
