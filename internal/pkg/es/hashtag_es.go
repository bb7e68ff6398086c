package es

// HashtagES 对应 hashtag_index 的文档结构
type HashtagES struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
