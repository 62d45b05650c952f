package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curveplot/curve_visualizer/config"
)

func TestChatSampleSizeLifecycle(t *testing.T) {
	chatID := int64(424242)
	assert.Equal(t, config.GetConfig().DefaultSampleSize, sampleSizeForChat(chatID))

	setChatSampleSize(chatID, 500)
	assert.Equal(t, 500, sampleSizeForChat(chatID))

	purgeOldChats(time.Now().Add(time.Minute))
	assert.Equal(t, config.GetConfig().DefaultSampleSize, sampleSizeForChat(chatID))
}
