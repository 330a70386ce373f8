package dto

// CreateHospitalRequest payload for provisioning a hospital with its admin.
type CreateHospitalRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

// UpdateHospitalRequest payload for a partial hospital update.
type UpdateHospitalRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}
