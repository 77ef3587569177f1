package service

// 사용자에게 노출되는 결과 메시지. 테스트는 메시지 전체가 아니라
// 마커 문구(생성/수정/삭제/오류 등) 포함 여부를 검사한다.
const (
	MsgLoginSuccess = "로그인에 성공했습니다."
	MsgLogout       = "로그아웃되었습니다."

	MsgAppCreated      = "앱이 생성되었습니다."
	MsgAppUpdated      = "앱 정보가 수정되었습니다."
	MsgAppDeleted      = "앱이 삭제되었습니다."
	MsgAppCreateFailed = "앱 생성 중 오류가 발생했습니다."
	MsgAppUpdateFailed = "앱 수정 중 오류가 발생했습니다."
	MsgAppDeleteFailed = "앱 삭제 중 오류가 발생했습니다."

	MsgConceptCreated      = "개념이 생성되었습니다."
	MsgConceptUpdated      = "개념이 수정되었습니다."
	MsgConceptDeleted      = "개념이 삭제되었습니다."
	MsgConceptCreateFailed = "개념 생성 중 오류가 발생했습니다."
	MsgConceptUpdateFailed = "개념 수정 중 오류가 발생했습니다."
	MsgConceptDeleteFailed = "개념 삭제 중 오류가 발생했습니다."

	MsgLectureCreated      = "강의가 생성되었습니다."
	MsgLectureUpdated      = "강의가 수정되었습니다."
	MsgLectureDeleted      = "강의가 삭제되었습니다."
	MsgLectureCreateFailed = "강의 생성 중 오류가 발생했습니다."
	MsgLectureUpdateFailed = "강의 수정 중 오류가 발생했습니다."
	MsgLectureDeleteFailed = "강의 삭제 중 오류가 발생했습니다."

	MsgAdCreated      = "광고가 생성되었습니다."
	MsgAdUpdated      = "광고가 수정되었습니다."
	MsgAdDeleted      = "광고가 삭제되었습니다."
	MsgAdToggled      = "광고 상태가 변경되었습니다."
	MsgAdCreateFailed = "광고 생성 중 오류가 발생했습니다."
	MsgAdUpdateFailed = "광고 수정 중 오류가 발생했습니다."
	MsgAdDeleteFailed = "광고 삭제 중 오류가 발생했습니다."
	MsgAdToggleFailed = "광고 상태 변경 중 오류가 발생했습니다."

	MsgContactSubmitted    = "문의가 성공적으로 접수되었습니다. 빠른 시일 내에 답변 드리겠습니다."
	MsgContactSubmitFailed = "문의 접수 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	MsgContactStatusSet    = "문의 상태가 변경되었습니다."
	MsgContactStatusFailed = "문의 상태 변경 중 오류가 발생했습니다."
)
