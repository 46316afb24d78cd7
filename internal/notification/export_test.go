package notification

// Re-exports for the external test package.
var (
	BuildEmailForTest = buildEmail
	BuildSMSForTest   = buildSMS
)
