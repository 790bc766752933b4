package profilesync

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
)

const (
	ProfileUpdatedMessage      = "Profile updated successfully"
	ProfileUpdateFailedMessage = "Failed to update profile"
)

// ProfileFetchResult is the outcome of a profile fetch.
type ProfileFetchResult struct {
	Profile models.UserProfile
	Err     error
}

// ProfileFetchOp performs the read request for a captured identity.
type ProfileFetchOp func(ctx context.Context) ProfileFetchResult

// ProfileSaveResult is the outcome of a profile save.
type ProfileSaveResult struct {
	Submitted models.UserProfile
	Updated   models.UserProfile
	Err       error
}

// ProfileSaveOp performs the update request for a captured snapshot.
type ProfileSaveOp func(ctx context.Context) ProfileSaveResult

// ProfileSync is the update variant: the manage-profile form.
type ProfileSync struct {
	notifier

	cred    models.Credential
	record  models.UserProfile
	editing bool

	profiles service.ClientProfileService
	logger   *logger.Logger
}

// NewProfileSync builds the manage-profile form state for cred. The record
// starts empty and read-only; call Fetch or Initialize to load it.
func NewProfileSync(cred models.Credential, profiles service.ClientProfileService, logger *logger.Logger) *ProfileSync {
	return &ProfileSync{
		cred:     cred,
		profiles: profiles,
		logger:   logger,
	}
}

// Credential returns the credential the form was built with.
func (p *ProfileSync) Credential() models.Credential {
	return p.cred
}

// Record returns a copy of the form's current values.
func (p *ProfileSync) Record() models.UserProfile {
	return p.record
}

// Editing reports whether the fields are writable.
func (p *ProfileSync) Editing() bool {
	return p.editing
}

// ToggleEdit flips edit mode and returns the new mode. Local changes are
// kept either way.
func (p *ProfileSync) ToggleEdit() bool {
	p.editing = !p.editing
	return p.editing
}

// SetField stores value as entered. Fields are writable only in edit mode.
func (p *ProfileSync) SetField(field, value string) error {
	var target *string
	switch field {
	case models.ProfileFieldFirstName:
		target = &p.record.FirstName
	case models.ProfileFieldLastName:
		target = &p.record.LastName
	case models.ProfileFieldPhoneNumber:
		target = &p.record.PhoneNumber
	case models.ProfileFieldAddress:
		target = &p.record.Address
	case models.ProfileFieldEmail:
		return ErrReadOnlyField
	default:
		return ErrUnknownField
	}

	if !p.editing {
		return ErrNotEditing
	}
	*target = value
	return nil
}

// Fetch returns the operation that reads the identity's profile, or nil
// when there is no credential and nothing should be requested.
func (p *ProfileSync) Fetch() ProfileFetchOp {
	if !p.cred.Present() {
		return nil
	}

	cred := p.cred
	profiles := p.profiles
	return func(ctx context.Context) ProfileFetchResult {
		profile, err := profiles.GetProfile(ctx, cred)
		return ProfileFetchResult{Profile: profile, Err: err}
	}
}

// ApplyFetch overwrites the record with a fetched profile. A failed fetch
// leaves the record unchanged and is only logged.
func (p *ProfileSync) ApplyFetch(res ProfileFetchResult) {
	if res.Err != nil {
		p.logger.Warn().Err(res.Err).Str("email", p.cred.Email).Msg("failed to load profile")
		return
	}
	p.record = res.Profile
}

// Initialize fetches the profile and applies it. Without a credential it
// does nothing. The fetch error is returned for callers that want it; the
// form state is the same either way.
func (p *ProfileSync) Initialize(ctx context.Context) error {
	op := p.Fetch()
	if op == nil {
		return nil
	}

	res := op(ctx)
	p.ApplyFetch(res)
	return res.Err
}

// Save captures the current record and returns the operation that submits
// it. Outside edit mode it returns ErrNotEditing and no operation.
func (p *ProfileSync) Save() (ProfileSaveOp, error) {
	if !p.editing {
		return nil, ErrNotEditing
	}

	cred := p.cred
	profile := p.record
	profiles := p.profiles

	return func(ctx context.Context) ProfileSaveResult {
		if !cred.Present() {
			return ProfileSaveResult{Submitted: profile, Err: service.ErrMissingCredential}
		}
		updated, err := profiles.UpdateProfile(ctx, cred, profile)
		return ProfileSaveResult{Submitted: profile, Updated: updated, Err: err}
	}, nil
}

// ApplySave reports the outcome and returns the sequence number of the
// notification it showed. On success the record takes the server's values
// and edit mode ends; on failure the form stays as it is.
func (p *ProfileSync) ApplySave(res ProfileSaveResult) uint64 {
	if res.Err != nil {
		if errors.Is(res.Err, service.ErrMissingCredential) {
			p.logger.Warn().Msg("profile submitted without a session")
		} else {
			p.logger.Err(res.Err).Str("email", p.cred.Email).Msg("failed to update profile")
		}
		return p.notify(models.NotificationError, ProfileUpdateFailedMessage)
	}

	p.record = res.Updated
	p.editing = false
	return p.notify(models.NotificationSuccess, ProfileUpdatedMessage)
}

// Submit saves the current record and applies the outcome.
func (p *ProfileSync) Submit(ctx context.Context) error {
	op, err := p.Save()
	if err != nil {
		return err
	}

	res := op(ctx)
	p.ApplySave(res)
	return res.Err
}
