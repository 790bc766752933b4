package profilesync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/mock"
	"github.com/MKhiriev/go-pet-portal/internal/service"
	"github.com/MKhiriev/go-pet-portal/models"
)

var annCred = models.Credential{Token: "a.b.c", Email: "ann@example.com"}

func newTestPetSync(t *testing.T, cred models.Credential) (*PetSync, *mock.MockClientPetService) {
	t.Helper()
	pets := mock.NewMockClientPetService(gomock.NewController(t))
	p := NewPetSync(cred, pets, logger.Nop())
	return p, pets
}

func fillPet(t *testing.T, p *PetSync) {
	t.Helper()
	require.NoError(t, p.SetField(models.PetFieldName, "Rex"))
	require.NoError(t, p.SetField(models.PetFieldSpecies, "dog"))
	require.NoError(t, p.SetField(models.PetFieldBreed, "lab"))
	require.NoError(t, p.SetField(models.PetFieldAge, "three"))
	require.NoError(t, p.SetField(models.PetFieldNotes, "  likes\nwalks  "))
}

func TestPetSync_InitializeWithCredential(t *testing.T) {
	p, _ := newTestPetSync(t, annCred)

	assert.Equal(t, models.Pet{OwnerEmail: "ann@example.com"}, p.Record())
	assert.False(t, p.Notification().Visible)
}

func TestPetSync_InitializeWithoutCredential(t *testing.T) {
	p, _ := newTestPetSync(t, models.Credential{})

	assert.Equal(t, models.Pet{}, p.Record())
	assert.False(t, p.Notification().Visible)
}

func TestPetSync_SetField(t *testing.T) {
	p, _ := newTestPetSync(t, annCred)

	assert.ErrorIs(t, p.SetField(models.PetFieldOwnerEmail, "mallory@example.com"), ErrReadOnlyField)
	assert.ErrorIs(t, p.SetField("color", "brown"), ErrUnknownField)
	assert.Equal(t, "ann@example.com", p.Record().OwnerEmail)

	fillPet(t, p)
	assert.Equal(t, "  likes\nwalks  ", p.Record().Notes)
}

func TestPetSync_SubmitSuccessClearsAllButOwner(t *testing.T) {
	p, pets := newTestPetSync(t, annCred)
	fillPet(t, p)
	entered := p.Record()

	pets.EXPECT().CreatePet(gomock.Any(), annCred, entered).Return(entered, nil)

	require.NoError(t, p.Submit(context.Background()))

	assert.Equal(t, models.Pet{OwnerEmail: "ann@example.com"}, p.Record())
	n := p.Notification()
	assert.True(t, n.Visible)
	assert.Equal(t, models.NotificationSuccess, n.Kind)
	assert.Equal(t, "Pet added successfully", n.Message)
}

func TestPetSync_SubmitFailureKeepsRecord(t *testing.T) {
	p, pets := newTestPetSync(t, annCred)
	fillPet(t, p)
	entered := p.Record()

	pets.EXPECT().CreatePet(gomock.Any(), annCred, entered).Return(models.Pet{}, service.ErrRequestFailed)

	err := p.Submit(context.Background())
	assert.ErrorIs(t, err, service.ErrRequestFailed)

	assert.Equal(t, entered, p.Record())
	n := p.Notification()
	assert.True(t, n.Visible)
	assert.Equal(t, models.NotificationError, n.Kind)
	assert.Equal(t, "Failed to add pet", n.Message)
}

func TestPetSync_SubmitWithoutCredentialSendsNothing(t *testing.T) {
	// no CreatePet expectation: any call fails the test
	p, _ := newTestPetSync(t, models.Credential{})
	require.NoError(t, p.SetField(models.PetFieldName, "Rex"))

	err := p.Submit(context.Background())
	assert.ErrorIs(t, err, service.ErrMissingCredential)

	assert.Equal(t, "Rex", p.Record().Name)
	assert.Equal(t, models.NotificationError, p.Notification().Kind)
	assert.Equal(t, PetAddFailedMessage, p.Notification().Message)
}

func TestPetSync_SaveCapturesSnapshot(t *testing.T) {
	p, pets := newTestPetSync(t, annCred)
	require.NoError(t, p.SetField(models.PetFieldName, "Rex"))

	op := p.Save()
	// edits made while the request is in flight are not sent
	require.NoError(t, p.SetField(models.PetFieldName, "Max"))

	pets.EXPECT().CreatePet(gomock.Any(), annCred, models.Pet{Name: "Rex", OwnerEmail: "ann@example.com"}).
		Return(models.Pet{ID: "p1"}, nil)

	res := op(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, "Rex", res.Submitted.Name)
	assert.Equal(t, "p1", res.Created.ID)
}

func TestPetSync_DismissThenTimerIsHarmless(t *testing.T) {
	p, pets := newTestPetSync(t, annCred)
	pets.EXPECT().CreatePet(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Pet{}, nil)

	op := p.Save()
	seq := p.ApplySave(op(context.Background()))

	p.Dismiss()
	assert.False(t, p.Notification().Visible)
	assert.False(t, p.Expire(seq))
}

func TestPetSync_SecondSubmitOutlivesFirstTimer(t *testing.T) {
	p, pets := newTestPetSync(t, annCred)
	pets.EXPECT().CreatePet(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Pet{}, nil)
	pets.EXPECT().CreatePet(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Pet{}, service.ErrRequestFailed)

	first := p.ApplySave(p.Save()(context.Background()))
	second := p.ApplySave(p.Save()(context.Background()))

	assert.False(t, p.Expire(first))
	assert.Equal(t, PetAddFailedMessage, p.Notification().Message)
	assert.True(t, p.Expire(second))
}

func TestPetSync_Credential(t *testing.T) {
	p, _ := newTestPetSync(t, annCred)
	assert.Equal(t, annCred, p.Credential())
}
