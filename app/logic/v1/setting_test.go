package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

func setupSettingLogic() *v1.SettingLogic {
	return v1.NewSettingLogic(ctx, setupCore())
}

func Test_SettingRoundTrip(t *testing.T) {
	logic := setupSettingLogic()

	require.NoError(t, logic.SetSetting(types.SETTING_NOTIFICATIONS_ENABLED, "true"))

	setting, err := logic.GetSetting(types.SETTING_NOTIFICATIONS_ENABLED)
	require.NoError(t, err)
	assert.Equal(t, "true", setting.Value)
}

func Test_SettingUnknownKey(t *testing.T) {
	logic := setupSettingLogic()

	_, err := logic.GetSetting("color_scheme")
	require.Error(t, err)

	require.Error(t, logic.SetSetting("color_scheme", "dark"))
}

func Test_SettingAbsentKnownKey(t *testing.T) {
	logic := setupSettingLogic()

	setting, err := logic.GetSetting(types.SETTING_REMINDER_TIME)
	require.NoError(t, err)
	assert.Equal(t, types.SETTING_REMINDER_TIME, setting.Key)
}
