package discord

import "time"

// SSE client configuration
const (
	sseInitialBackoff    = 1 * time.Second
	sseMaxBackoff        = 30 * time.Second
	sseBackoffMultiplier = 2.0

	// sseBufferSize bounds one SSE line
	sseBufferSize = 64 * 1024
)

// SSE log messages
const (
	sseLogMsgClientConnected   = "SSE client connected"
	sseLogMsgClientStopped     = "SSE client stopped"
	sseLogMsgConnectionFailed  = "SSE connection failed"
	sseLogMsgParseError        = "Failed to parse SSE event"
	sseLogMsgHandlerError      = "SSE event handler error"
	sseLogMsgNotificationSent  = "Discord notification sent"
	sseLogMsgNotificationError = "Failed to send Discord notification"
)
