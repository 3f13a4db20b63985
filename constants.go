package main

import "time"

// Game configuration defaults
const (
	DefaultTarget      = 17.0 // Displayed seconds the player is aiming for
	DefaultCutoff      = 18.0 // True elapsed seconds before a round is force-stopped
	DefaultRestartWait = 2500 * time.Millisecond
	DefaultBoardSize   = 10 // Maximum leaderboard rows
	MaxNameLength      = 24
	storeTimeout       = 5 * time.Second
	feedbackCallBudget = 10 * time.Second
)

// Perturbation parameters
const (
	SpeedRampStart = 10.0  // True seconds after which the display accelerates
	SpeedRampRate  = 0.015 // Extra speed per second past the ramp start
	JitterChance   = 0.02  // Per-tick probability of a jitter stutter
	JitterMax      = 0.03  // Jitter is uniform in [0, JitterMax) seconds
	SkipChance     = 0.005 // Per-tick probability of a visible skip
	SkipAmount     = 0.05  // Fixed skip size in seconds
	TickInterval   = 1.0 / 60.0
)

// Verdict labels, ordered from best to worst
const (
	VerdictPerfect      = "PERFECT"
	VerdictSoClose      = "SO CLOSE"
	VerdictTooEarly     = "TOO EARLY"
	VerdictTooLate      = "TOO LATE"
	VerdictAlmost       = "ALMOST"
	VerdictNotEvenClose = "NOT EVEN CLOSE"
	VerdictNoStop       = "DIDN'T EVEN TRY"
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome        = "/"
	RouteStart       = "/start"
	RouteStop        = "/stop"
	RouteRestart     = "/restart"
	RouteRoundState  = "/round-state"
	RouteLeaderboard = "/leaderboard"
	RoutePlayerName  = "/player-name"
)

// Error message constants
const (
	ErrorAlreadyPlaying  = "A round is already running."
	ErrorFeedbackPending = "Still fetching your result."
	ErrorNameEmpty       = "Display name cannot be empty."
	ErrorNameTooLong     = "Display name is too long."
	ErrorNamesDisabled   = "Display names are not enabled."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
