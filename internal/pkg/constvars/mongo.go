package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
	MongoCollectionFiles         = "files"
)

const (
	MongoIndexProviderSlot = "provider_active_slot_unique"
)
