package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionPatients     = "patients"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAdmins       = "admins"
	MongoCollectionSchedules    = "doctor_schedules"
	MongoCollectionAppointments = "appointments"
	MongoCollectionPayments     = "payments"
)
