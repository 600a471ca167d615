package ports

// Notifier delivers user-visible notifications. The gateway and the auth
// service are the only emitters; each failure path produces exactly one
// notification.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}
