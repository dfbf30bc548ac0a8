package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
		SMS SMS
	}
	App struct {
		Env                              string
		Port                             string
		Version                          string
		Address                          string
		Timezone                         string
		EndpointPrefix                   string
		MaxRequests                      int
		ShutdownTimeout                  int
		MaxTimeRequestsPerSeconds        int
		RequestBodyLimitInMegabyte       int
		RabbitMQSMSQueue                 string
		RabbitMQMailerQueue              string
		AdminEmail                       string
		OTPExpiredTimeInMinutes          int
		OTPMaxIssuesPerHour              int
		SessionExpiredTimeInHours        int
		DefaultSlotDurationInMinutes     int
		CancellationCutoffInHours        int
		ScheduleLockTTLInSeconds         int
		EnforceBreakWithinWorkingHours   bool
		DocumentMaxUploadSizeInMB        int64
		PresignedUrlObjectExpiryInHours  int
		InitialAdminPhone                string
		InitialAdminPassword             string
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	SMS struct {
		SenderName string
	}
)
