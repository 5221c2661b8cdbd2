package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "abcdefghijklmnopqrst...", MaskToken("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "ab...", MaskToken("abcd"))
	assert.Equal(t, "...", MaskToken(""))
}

func TestWithFieldsWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	WithFields(map[string]interface{}{"bid_id": "bid_a1_p1_1"}).Info("bid saved")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "bid saved", line["msg"])
	assert.Equal(t, "bid_a1_p1_1", line["bid_id"])
	assert.Equal(t, "info", line["level"])
}

func TestConfigure(t *testing.T) {
	defer Configure("info", false)

	Configure("warn", false)
	assert.Equal(t, logrus.WarnLevel, Logger().GetLevel())

	Configure("warn", true)
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	Configure("nonsense", false)
	assert.Equal(t, logrus.InfoLevel, Logger().GetLevel())
}

func TestDebugFollowsConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer Configure("info", false)

	t.Setenv("ENVIRONMENT", "")

	Configure("info", true)
	Debug("agent token found")
	assert.Contains(t, buf.String(), "agent token found")

	buf.Reset()
	Configure("info", false)
	Debug("agent token found")
	assert.Empty(t, buf.String())
}
