package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// listenSettings 是 pkg/interfaces.ListenSettings 的别名
type listenSettings = pkgif.ListenSettings
