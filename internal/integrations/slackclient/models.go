package slackclient

// postMessageRequest тело запроса chat.postMessage
type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// profile профиль пользователя для users.profile.set
type profile struct {
	StatusEmoji      string `json:"status_emoji"`
	StatusText       string `json:"status_text"`
	StatusExpiration int64  `json:"status_expiration"`
}

// setProfileRequest тело запроса users.profile.set
type setProfileRequest struct {
	User    string  `json:"user"`
	Profile profile `json:"profile"`
}

// apiResponse общий ответ Web API
// При ok=false код причины приходит в поле error
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
