package dto

type ChannelStatusResponse struct {
	Connected  bool `json:"connected"`
	Connecting bool `json:"connecting"`
}

type SetConnectingRequest struct {
	Connecting bool `json:"connecting"`
}
