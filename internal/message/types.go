package message

// SendMessageRequest 发送私信请求
type SendMessageRequest struct {
	RecipientID int    `json:"recipient_id" binding:"required" example:"2"` // 收件人
	Subject     string `json:"subject" binding:"required"`                  // 主题
	Body        string `json:"body"`                                        // 正文
}
