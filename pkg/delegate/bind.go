// ABOUTME: Binders that adapt a method plus receiver into a subscriber callable
// ABOUTME: SubscribeMethod helpers wrap Bind for Delegate and Signal

package delegate

// Bind returns a callable that invokes method on recv. method is usually a
// method expression such as (*Counter).Add. Pass a pointer receiver to
// observe the caller's instance; a value receiver binds a copy.
func Bind[R, T any](recv R, method func(R, T)) func(T) {
	return func(arg T) {
		method(recv, arg)
	}
}

// Bind0 is Bind for argument-less methods.
func Bind0[R any](recv R, method func(R)) func() {
	return func() {
		method(recv)
	}
}

// SubscribeMethod subscribes method bound to recv. The caller keeps recv
// alive for as long as the subscription should fire; the delegate holds it
// only through the bound callable.
func SubscribeMethod[R, T any](d *Delegate[T], recv R, method func(R, T)) *Handle {
	return d.Subscribe(Bind(recv, method))
}

// SubscribeSignalMethod subscribes an argument-less method bound to recv.
func SubscribeSignalMethod[R any](s *Signal, recv R, method func(R)) *Handle {
	return s.Subscribe(Bind0(recv, method))
}
