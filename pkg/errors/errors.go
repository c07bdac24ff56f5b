// Package errors はNaive Bayesコア全体のエラーハンドリングを提供します。
// cockroachdb/errors の上に、回復可能なエラーの分類（InvalidInput / NumericFailure）と
// 構造化されたエラー型を定義します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	エラー分類
//
// ===========================================================================

var (
	// ErrInvalidInput は入力データが契約を満たさない場合のマークです。
	// 行数の不一致、空のバッチ、逐次学習中の特徴量次元の変化などが該当します。
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericFailure はスコアの比較が順序付け不能な値（NaN）に遭遇した場合のマークです。
	ErrNumericFailure = errors.New("numeric failure")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = errors.New("empty data")
)

// IsInvalidInput はエラーが InvalidInput に分類されるかどうかを返します。
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNumericFailure はエラーが NumericFailure に分類されるかどうかを返します。
func IsNumericFailure(err error) bool {
	return errors.Is(err, ErrNumericFailure)
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError は学習済みのクラスを持たないモデルで予測しようとした場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("scigo: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
// InvalidInput としてマークされます。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("scigo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(errors.Mark(err, ErrInvalidInput))
}

// ValueError は引数の値が不適切な場合のエラーです。InvalidInput としてマークされます。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("scigo: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(errors.Mark(err, ErrInvalidInput))
}

// NewEmptyDataError は空のバッチを表すValueErrorを作成します。
// ErrEmptyData と ErrInvalidInput の両方に一致します。
func NewEmptyDataError(op string) error {
	err := &ValueError{Op: op, Message: "batch contains zero samples"}
	return errors.WithStack(errors.Mark(errors.Mark(err, ErrEmptyData), ErrInvalidInput))
}

// ScoreOrderError は予測時にスコアが順序付け不能だった場合のエラーです。
// NumericFailure と InvalidInput の両方としてマークされます。
type ScoreOrderError struct {
	Op     string
	Sample int
	Class  string
	Value  float64
}

func (e *ScoreOrderError) Error() string {
	return fmt.Sprintf("scigo: %s: unorderable score %v for class %s at sample %d", e.Op, e.Value, e.Class, e.Sample)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ScoreOrderError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("sample", e.Sample).
		Str("class", e.Class).
		Float64("value", e.Value).
		Str("type", "ScoreOrderError")
}

// NewScoreOrderError は新しいScoreOrderErrorを作成し、スタックトレースを付与します。
// class は任意のラベル型を受け取り、文字列化して保持します。
func NewScoreOrderError(op string, sample int, class any, value float64) error {
	err := &ScoreOrderError{Op: op, Sample: sample, Class: fmt.Sprint(class), Value: value}
	return errors.WithStack(errors.Mark(errors.Mark(err, ErrNumericFailure), ErrInvalidInput))
}

// ModelError は機械学習モデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scigo: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("scigo: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
