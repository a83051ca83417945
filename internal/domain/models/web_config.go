package models

// FirebaseWebConfig is the client-safe subset of the Firebase project config.
// Only these keys ever leave the server.
type FirebaseWebConfig struct {
	APIKey            string `json:"apiKey" validate:"required"`
	AuthDomain        string `json:"authDomain" validate:"required"`
	ProjectID         string `json:"projectId" validate:"required"`
	StorageBucket     string `json:"storageBucket" validate:"required"`
	MessagingSenderID string `json:"messagingSenderId" validate:"required"`
	AppID             string `json:"appId" validate:"required"`
	MeasurementID     string `json:"measurementId,omitempty"`
}
