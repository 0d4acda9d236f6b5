package impl

import (
	"testing"

	"rollcall/config"
	"rollcall/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressValidator_IsDeliverable(t *testing.T) {
	validator := NewAddressValidator(0)

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "empty", address: "", want: false},
		{name: "whitespace", address: "          ", want: false},
		{name: "too short", address: "abc123", want: false},
		{name: "exactly minimum", address: "0123456789", want: true},
		{name: "real token", address: "fcm-token-abcdefghijklmnopqrstuvwxyz", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.IsDeliverable(&entity.Recipient{DeviceAddress: tt.address})
			assert.Equal(t, tt.want, got)
		})
	}

	assert.False(t, validator.IsDeliverable(nil))
}

func TestAddressValidator_CustomMinimum(t *testing.T) {
	validator := NewAddressValidator(4)

	assert.True(t, validator.IsDeliverable(&entity.Recipient{DeviceAddress: "abcd"}))
	assert.False(t, validator.IsDeliverable(&entity.Recipient{DeviceAddress: "abc"}))
}

func TestNotificationComposer_Compose(t *testing.T) {
	composer := NewNotificationComposer("Riverside Primary")

	absent, err := composer.Compose(&entity.Recipient{ID: "S1001", DisplayName: "Mia Chen", AttendanceState: entity.AttendanceAbsent})
	require.NoError(t, err)
	assert.Equal(t, "Attendance alert - Riverside Primary", absent.Title)
	assert.Equal(t, "Notice: Mia Chen is absent today.", absent.Body)
	assert.Equal(t, map[string]string{
		"recipientId":  "S1001",
		"state":        "absent",
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}, absent.Data)

	late, err := composer.Compose(&entity.Recipient{ID: "S1002", DisplayName: "Leo Park", AttendanceState: entity.AttendanceLate})
	require.NoError(t, err)
	assert.Equal(t, "Notice: Leo Park arrived late today.", late.Body)
	assert.Equal(t, "late", late.Data["state"])

	// Each call gets its own data map.
	late.Data["state"] = "changed"
	again, err := composer.Compose(&entity.Recipient{ID: "S1002", DisplayName: "Leo Park", AttendanceState: entity.AttendanceLate})
	require.NoError(t, err)
	assert.Equal(t, "late", again.Data["state"])
}

func TestNotificationComposer_ComposeRejectsPresent(t *testing.T) {
	composer := NewNotificationComposer("")

	_, err := composer.Compose(&entity.Recipient{ID: "S1", AttendanceState: entity.AttendancePresent})
	assert.ErrorIs(t, err, ErrNotAlertable)

	_, err = composer.Compose(nil)
	assert.Error(t, err)
}

func TestNotificationComposer_NoSchoolName(t *testing.T) {
	msg, err := NewNotificationComposer("  ").Compose(&entity.Recipient{ID: "S1", DisplayName: "A", AttendanceState: entity.AttendanceAbsent})
	require.NoError(t, err)
	assert.Equal(t, "Attendance alert", msg.Title)
}

func TestResolveDialect(t *testing.T) {
	tests := []struct {
		credential string
		want       entity.Dialect
	}{
		{credential: "", want: entity.DialectSimulated},
		{credential: "   ", want: entity.DialectSimulated},
		{credential: "ya29.a0AfH6SMB", want: entity.DialectBearerTokenV1},
		{credential: "Bearer abc.def", want: entity.DialectBearerTokenV1},
		{credential: "bearer abc.def", want: entity.DialectBearerTokenV1},
		{credential: "AAAAk3x:APA91bH", want: entity.DialectLegacyKeyed},
	}

	for _, tt := range tests {
		t.Run(tt.credential, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDialect(tt.credential))
		})
	}
}

func TestNormalizeCredential(t *testing.T) {
	assert.Equal(t, "abc.def", NormalizeCredential("Bearer abc.def"))
	assert.Equal(t, "ya29.token", NormalizeCredential(" ya29.token "))
	assert.Equal(t, "server-key", NormalizeCredential("server-key"))
}

func TestTransportSelector_CandidateRoutes(t *testing.T) {
	selector := NewTransportSelector(config.DefaultRelays())

	assert.Empty(t, selector.CandidateRoutes(entity.DialectSimulated))

	routes := selector.CandidateRoutes(entity.DialectLegacyKeyed)
	require.Len(t, routes, 3)
	assert.True(t, routes[0].IsDirect())
	assert.Equal(t, "corsproxy", routes[1].Name)
	assert.True(t, routes[1].Transparent)
	assert.Equal(t, "thingproxy", routes[2].Name)

	// Callers cannot reorder the selector's relays.
	routes[1], routes[2] = routes[2], routes[1]
	assert.Equal(t, "corsproxy", selector.CandidateRoutes(entity.DialectBearerTokenV1)[1].Name)
}

func TestTransportSelector_SkipsBlankTemplates(t *testing.T) {
	selector := NewTransportSelector([]config.RelayConfig{{Name: "broken"}, {Name: "ok", Template: "https://relay/?{url}"}})

	routes := selector.CandidateRoutes(entity.DialectLegacyKeyed)
	require.Len(t, routes, 2)
	assert.Equal(t, "ok", routes[1].Name)
}
