package pdf

var FormatThousands = formatThousands
