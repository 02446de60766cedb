package notifications

import (
	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

// display computes the title, message and avatar shown for an event. It is
// evaluated once at receipt, payload fields that are missing simply leave
// the corresponding display field empty.
func display(event push.Event) (title, message, avatar string) {
	switch event.Type {
	case push.EventTypeFriendApply:
		var application friends.Application
		if err := event.Bind("application", &application); err == nil {
			return "好友申请", application.From.Name + " 请求添加你为好友", application.From.Avatar
		}
		return "好友申请", "", ""

	case push.EventTypeNewFriend:
		var friend friends.Friend
		if err := event.Bind("friend", &friend); err == nil {
			return "新的朋友", "你和 " + friend.User.Name + " 已成为好友", friend.User.Avatar
		}
		return "新的朋友", "", ""

	case push.EventTypeChatCreate:
		var chat chats.Chat
		if err := event.Bind("chat", &chat); err == nil {
			return "新的会话", chat.Name, chat.Avatar
		}
		return "新的会话", "", ""

	case push.EventTypeChatDelete:
		return "会话已删除", "", ""

	case push.EventTypeMomentCreate:
		var moment moments.Moment
		if err := event.Bind("moment", &moment); err == nil {
			return "新动态", moment.Author.Name + " 发布了动态", moment.Author.Avatar
		}
		return "新动态", "", ""

	case push.EventTypeMomentDelete:
		return "动态已删除", "", ""

	case push.EventTypeLike:
		var user users.User
		if err := event.Bind("user", &user); err == nil {
			return "点赞", user.Name + " 赞了你的动态", user.Avatar
		}
		return "点赞", "", ""

	case push.EventTypeUnlike:
		var user users.User
		if err := event.Bind("user", &user); err == nil {
			return "取消点赞", user.Name + " 取消了点赞", user.Avatar
		}
		return "取消点赞", "", ""

	case push.EventTypeComment:
		var comment moments.Comment
		if err := event.Bind("comment", &comment); err == nil {
			return "评论", comment.Author.Name + "：" + comment.Content, comment.Author.Avatar
		}
		return "评论", "", ""

	case push.EventTypeCommentDelete:
		return "评论已删除", "", ""

	default:
		return string(event.Type), "", ""
	}
}
