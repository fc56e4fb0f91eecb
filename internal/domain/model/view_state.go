package model

import "sync"

// ViewState 各コンポーネントが読み書きする共有状態
// フィールドごとに書き込みはメソッド経由の単一書き込み規律を守る
type ViewState struct {
	mu sync.RWMutex

	currentLocation LatLng
	locationReady   bool

	selection      []*SelectedRestaurant
	activeSearchID string
}

// NewViewState ViewStateの新しいインスタンスを作成
func NewViewState() *ViewState {
	return &ViewState{}
}

// SetLocation 解決済みの現在地を設定し、位置準備完了フラグを立てる
// 位置解決は1プロセスにつき1回なのでフラグは一度だけ変化する
func (s *ViewState) SetLocation(loc LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentLocation = loc
	s.locationReady = true
}

// Location 現在地と位置準備完了フラグを取得
func (s *ViewState) Location() (LatLng, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLocation, s.locationReady
}

// BeginSearch 新しい検索の世代トークンを登録する
// これ以降、古い世代の検索結果はコミットできなくなる
func (s *ViewState) BeginSearch(searchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSearchID = searchID
}

// CommitSelection 検索結果で選択リストを丸ごと置き換える
// searchIDが現在の世代と一致しない場合は何もせずfalseを返す
// onCommitはコミットと同じクリティカルセクション内で呼ばれるため、
// 選択リストに連動する副作用（マーカー同期など）を世代違いの
// 割り込みなしに実行できる。onCommit内からViewStateのメソッドを
// 呼んではならない
func (s *ViewState) CommitSelection(searchID string, restaurants []*SelectedRestaurant, onCommit func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if searchID != s.activeSearchID {
		return false
	}
	s.selection = restaurants
	if onCommit != nil {
		onCommit()
	}
	return true
}

// Selection 現在の選択リストのコピーを取得
func (s *ViewState) Selection() []*SelectedRestaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SelectedRestaurant, len(s.selection))
	copy(out, s.selection)
	return out
}
