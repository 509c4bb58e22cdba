package port

// URLSynchronizerPort mirrors the active listing type into the visible,
// shareable URL without triggering a navigation. The owning UI layer
// injects a platform-specific implementation; the core only ever calls
// this one method.
type URLSynchronizerPort interface {
	SetVisiblePath(path string)
}
