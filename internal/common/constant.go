package common

// DateLayout is the calendar-day key format shared by client and server.
// One journal entry exists per (user, day).
const DateLayout = "2006-01-02"
